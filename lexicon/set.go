package lexicon

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/sirupsen/logrus"
)

// SetRecognizer accepts a token when it is an entry of a fixed word set.
// It serves user lexicons that are too small or too volatile to compile.
type SetRecognizer struct {
	words  map[string]struct{}
	sorted []string // keys of words, for prefix queries
	fold   bool
	last   []string
	closed bool
	log    logrus.FieldLogger
}

// NewSetRecognizer returns a recognizer over words.
// Entries are trimmed and lowercased; empty entries are skipped.
func NewSetRecognizer(words []string, opts ...Option) *SetRecognizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &SetRecognizer{words: make(map[string]struct{}, len(words)), fold: o.fold, log: o.log}
	for _, w := range words {
		k := r.key(w)
		if k == "" {
			continue
		}
		if _, dup := r.words[k]; !dup {
			r.words[k] = struct{}{}
			r.sorted = append(r.sorted, k)
		}
	}
	sort.Strings(r.sorted)

	return r
}

// key maps a token to its lookup form.
func (r *SetRecognizer) key(token string) string {
	k := strings.ToLower(strings.TrimSpace(token))
	if r.fold {
		k = unidecode.Unidecode(k)
	}

	return k
}

// Len returns the number of distinct entries.
func (r *SetRecognizer) Len() int { return len(r.words) }

// Accept reports whether token is an entry. On success WordList is [token].
func (r *SetRecognizer) Accept(token string) bool {
	r.last = nil
	if r.closed {
		r.log.WithError(ErrClosed).WithField("phrase", token).Error("lexicon: accept after close")
		return false
	}
	if !r.Contains(token) {
		return false
	}
	r.last = []string{strings.TrimSpace(token)}

	return true
}

// WordList returns the token accepted last, or nil.
func (r *SetRecognizer) WordList() []string { return r.last }

// Contains reports whether word is an entry.
func (r *SetRecognizer) Contains(word string) bool {
	k := r.key(word)
	if k == "" {
		return false
	}
	_, ok := r.words[k]

	return ok
}

// HasPrefix reports whether some entry starts with prefix.
func (r *SetRecognizer) HasPrefix(prefix string) bool {
	p := r.key(prefix)
	i := sort.SearchStrings(r.sorted, p)

	return i < len(r.sorted) && strings.HasPrefix(r.sorted[i], p)
}

// Close drops the word set. It is idempotent.
func (r *SetRecognizer) Close() error {
	r.closed = true
	r.words = nil
	r.sorted = nil
	r.last = nil

	return nil
}
