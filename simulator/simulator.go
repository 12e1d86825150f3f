package simulator

import (
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Simulator scans phrases with a Machine.
//
// The configuration arena and the word list are reused across scans, so a
// Simulator is not safe for concurrent use.
type Simulator struct {
	dfa   Machine
	arena []Configuration
	words []string
	trace func(Event)
	log   logrus.FieldLogger
}

// New returns a Simulator driving m.
func New(m Machine, opts ...Option) *Simulator {
	s := &Simulator{dfa: m, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WordList returns the words produced by the most recent successful scan.
// The slice is rebuilt by every scan; callers must copy it to keep it.
func (s *Simulator) WordList() []string { return s.words }

// Trail returns a copy of the configurations created by the most recent scan,
// in creation order. Parent fields index into the returned slice.
func (s *Simulator) Trail() []Configuration {
	out := make([]Configuration, len(s.arena))
	copy(out, s.arena)

	return out
}

// Accept scans input and reports whether it could be cut into words.
// Every scan fault, including a panic inside the scan, yields false.
func (s *Simulator) Accept(input string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("phrase", input).Errorf("simulator: scan panicked: %v", r)
			s.words = nil
			ok = false
		}
	}()

	if _, _, err := s.Track(input); err != nil {
		s.log.WithError(err).WithField("phrase", input).Debug("simulator: phrase rejected")
		return false
	}

	return true
}

// Track cuts input into words by longest match.
//
// The scan extends the current configuration one rune at a time. When no
// transition exists and more than one rune is left, the word boundary is
// recovered from the trail of configurations, the word before it is emitted,
// and the scan restarts from the initial state on the rest of the phrase.
// When at most one rune is left, the rest of the phrase is emitted as the
// last word.
//
// Track returns the final configuration, the word list (also kept for
// WordList), and a scan fault, if any.
//
// Complexity: O(n) steps per restart and at most one restart per word, where
// n is the rune length of input.
func (s *Simulator) Track(input string) (Configuration, []string, error) {
	s.arena = s.arena[:0]
	s.words = nil

	phrase := strings.TrimSpace(input)
	if phrase == "" {
		return Configuration{}, nil, ErrEmptyInput
	}

	var words []string
	cur := s.push(Configuration{State: s.dfa.Initial(), Parent: noParent, Unprocessed: phrase})
	for {
		if next, ok := s.step(cur); ok {
			cur = next
			continue
		}

		c := s.arena[cur]
		if utf8.RuneCountInString(c.Unprocessed) <= 1 {
			if phrase != "" {
				words = append(words, phrase)
			}
			s.words = words

			return c, words, nil
		}

		term, cut, err := s.boundary(cur, phrase)
		if err != nil {
			return c, nil, err
		}
		s.log.WithFields(logrus.Fields{
			"phrase": phrase,
			"term":   term,
		}).Debug("simulator: word boundary recovered")

		words = append(words, term)
		phrase = strings.TrimSpace(phrase[cut:])
		cur = s.push(Configuration{State: s.dfa.Initial(), Parent: noParent, Unprocessed: phrase})
	}
}

// push appends c to the arena and returns its index.
func (s *Simulator) push(c Configuration) int {
	s.arena = append(s.arena, c)

	return len(s.arena) - 1
}

// step consumes the first rune of the configuration at index i.
// It returns the index of the derived configuration.
func (s *Simulator) step(i int) (int, bool) {
	c := s.arena[i]
	if c.Unprocessed == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.Unprocessed)
	next, ok := s.dfa.Next(c.State, r)
	if !ok {
		return 0, false
	}

	to := Configuration{State: next, Parent: i, Unprocessed: c.Unprocessed[size:]}
	if s.trace != nil {
		s.trace(Event{From: c, To: to, Input: r})
	}

	return s.push(to), true
}

// boundary locates the end of the word that ends before the failing
// configuration at index i. It returns the trimmed word and the byte offset
// in phrase where the rest begins.
func (s *Simulator) boundary(i int, phrase string) (string, int, error) {
	c := s.arena[i]
	if c.IsRoot() {
		return "", 0, ErrNoTransition
	}
	parent := s.arena[c.Parent]

	var cut int
	switch {
	case startsWithSpace(c.Unprocessed) || startsWithSpace(parent.Unprocessed):
		// The failure sits on a space: the matched text is a whole word.
		cut = strings.Index(phrase, c.Unprocessed)
		if cut == 0 {
			next := strings.Index(phrase[len(c.Unprocessed):], c.Unprocessed)
			if next < 0 {
				return "", 0, ErrBoundaryNotFound
			}
			cut = len(c.Unprocessed) + next
		}
		if cut < 0 {
			return "", 0, ErrBoundaryNotFound
		}

	default:
		// The failure is inside a syllable: back off to the last space crossed.
		cut = -1
		for a := parent.Parent; a != noParent; a = s.arena[a].Parent {
			if u := s.arena[a].Unprocessed; startsWithSpace(u) {
				if cut = strings.Index(phrase, u); cut < 0 {
					return "", 0, ErrBoundaryNotFound
				}
				break
			}
		}
		if cut < 0 {
			if cut = strings.IndexByte(phrase, ' '); cut < 0 {
				cut = len(phrase)
			}
		}
	}

	term := strings.TrimSpace(phrase[:cut])
	if term == "" {
		return "", 0, ErrNoProgress
	}

	return term, cut, nil
}

func startsWithSpace(s string) bool { return strings.HasPrefix(s, " ") }
