// Package lexicon provides recognizers: components that decide whether a
// phrase can be cut into lexicon words and report the words they found.
//
// DFARecognizer binds one loaded automaton to one simulator. SetRecognizer
// accepts tokens from an in-memory word set, optionally ignoring diacritics.
// Neither is safe for concurrent use; wrap a recognizer with Synchronized to
// share it between goroutines.
package lexicon

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vntok/automaton"
	"github.com/katalvlaran/vntok/simulator"
)

// ErrClosed is logged when a closed recognizer is asked to accept a token.
var ErrClosed = errors.New("lexicon: recognizer closed")

// Recognizer decides whether a token can be cut into lexicon words.
//
// WordList returns the words found by the last successful Accept.
type Recognizer interface {
	Accept(token string) bool
	WordList() []string
	Close() error
}

// Option configures a recognizer.
type Option func(*options)

type options struct {
	log   logrus.FieldLogger
	fold  bool
	trace func(simulator.Event)
}

func defaultOptions() options {
	return options{log: logrus.StandardLogger()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithTrace forwards every simulator step to fn. DFARecognizer only.
func WithTrace(fn func(simulator.Event)) Option {
	return func(o *options) { o.trace = fn }
}

// WithFolding makes SetRecognizer match tokens with diacritics removed,
// so "hoa" matches "hoà". Ignored by DFARecognizer.
func WithFolding() Option {
	return func(o *options) { o.fold = true }
}

// DFARecognizer recognizes tokens with a lexicon automaton.
type DFARecognizer struct {
	dfa *automaton.Automaton
	sim *simulator.Simulator
	log logrus.FieldLogger
}

// NewDFARecognizer maps the binary automaton at path and binds a simulator
// to it. Load faults are returned unchanged, so errors.Is works against the
// automaton sentinels and os.ErrNotExist.
func NewDFARecognizer(path string, opts ...Option) (*DFARecognizer, error) {
	a, err := automaton.Load(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: load %s: %w", path, err)
	}

	return NewDFARecognizerFrom(a, opts...), nil
}

// NewDFARecognizerFrom wraps an automaton that is already loaded or built.
// The recognizer takes ownership: Close closes a.
func NewDFARecognizerFrom(a *automaton.Automaton, opts ...Option) *DFARecognizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	simOpts := []simulator.Option{simulator.WithLogger(o.log)}
	if o.trace != nil {
		simOpts = append(simOpts, simulator.WithTrace(o.trace))
	}

	return &DFARecognizer{
		dfa: a,
		sim: simulator.New(a, simOpts...),
		log: o.log,
	}
}

// Accept reports whether token can be cut into words. After Close it logs
// ErrClosed and returns false.
func (r *DFARecognizer) Accept(token string) bool {
	if r.dfa.Closed() {
		r.log.WithError(ErrClosed).WithField("phrase", token).Error("lexicon: accept after close")
		return false
	}

	return r.sim.Accept(token)
}

// WordList returns the words found by the last successful Accept.
func (r *DFARecognizer) WordList() []string { return r.sim.WordList() }

// Contains reports whether word is a complete lexicon entry.
func (r *DFARecognizer) Contains(word string) bool { return r.dfa.Accepts(word) }

// HasPrefix reports whether some lexicon entry starts with prefix.
func (r *DFARecognizer) HasPrefix(prefix string) bool { return r.dfa.HasPrefix(prefix) }

// Automaton returns the underlying automaton.
func (r *DFARecognizer) Automaton() *automaton.Automaton { return r.dfa }

// Close releases the automaton. It is idempotent.
func (r *DFARecognizer) Close() error { return r.dfa.Close() }
