// Package simulator runs a lexicon automaton over a phrase and cuts it into
// words by longest match, recovering word boundaries when a match fails.
//
// A scan is a chain of configurations. Each configuration records the
// automaton state reached and the input still to be consumed, and points to
// the configuration it was derived from. The chain is stored in an arena and
// parents are referenced by index, so walking back over the matched prefix is
// a loop over integers.
//
// Errors (scan faults, swallowed by Accept):
//
//	ErrEmptyInput       - the phrase is empty or only whitespace.
//	ErrNoTransition     - the scan failed before consuming any rune of a word.
//	ErrBoundaryNotFound - a recovered word boundary does not occur in the phrase.
//	ErrNoProgress       - a recovery would produce an empty word.
package simulator

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vntok/automaton"
)

// Sentinel scan faults returned by Track.
var (
	// ErrEmptyInput indicates a phrase that is empty after trimming.
	ErrEmptyInput = errors.New("simulator: empty input")

	// ErrNoTransition indicates the automaton has no transition for the first
	// rune of the remaining phrase, so there is no matched prefix to recover from.
	ErrNoTransition = errors.New("simulator: no transition from initial state")

	// ErrBoundaryNotFound indicates the text after a recovered boundary does
	// not occur in the remaining phrase.
	ErrBoundaryNotFound = errors.New("simulator: word boundary not found")

	// ErrNoProgress indicates a recovery that would not shorten the phrase.
	ErrNoProgress = errors.New("simulator: recovery made no progress")
)

// Machine is the part of an automaton the simulator drives.
// *automaton.Automaton implements it.
type Machine interface {
	Initial() automaton.State
	Next(s automaton.State, r rune) (automaton.State, bool)
}

// noParent marks a root configuration.
const noParent = -1

// Configuration is an immutable snapshot of a scan.
//
// Unprocessed is always a strict suffix of the parent's Unprocessed, except
// for a root configuration (Parent == -1), which starts a scan or a restart.
type Configuration struct {
	State       automaton.State
	Parent      int // arena index of the parent, -1 for a root
	Unprocessed string
}

// IsRoot reports whether c starts a scan or a restart.
func (c Configuration) IsRoot() bool { return c.Parent == noParent }

// Event describes one consumed rune.
type Event struct {
	From  Configuration
	To    Configuration
	Input rune
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithTrace registers fn to receive an Event for every consumed rune.
func WithTrace(fn func(Event)) Option {
	return func(s *Simulator) { s.trace = fn }
}

// WithLogger sets the logger used for recovery and fault messages.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}
