package automaton

import (
	"sort"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
)

// Automaton is a read-only deterministic transition table over runes.
//
// An Automaton is either built in memory (Builder.Build, FromBytes) or
// mapped from a file (Load). In the latter case the tables point into the
// mapped region and Close must be called to release it.
//
// Concurrency: all query methods are read-only and safe for concurrent use
// until Close is called. Close must not run concurrently with queries.
type Automaton struct {
	states []FlatState
	edges  []FlatEdge

	// mapping keeps the file mapping alive while the tables reference it.
	mapping mmap.MMap
	closed  bool
}

// Initial returns the initial state.
func (a *Automaton) Initial() State { return Initial }

// StateCount returns the number of states (0 after Close).
func (a *Automaton) StateCount() int { return len(a.states) }

// EdgeCount returns the number of transitions (0 after Close).
func (a *Automaton) EdgeCount() int { return len(a.edges) }

// outEdges returns the transitions leaving s, or nil for an unknown state.
func (a *Automaton) outEdges(s State) []FlatEdge {
	if int(s) >= len(a.states) {
		return nil
	}
	st := a.states[s]

	return a.edges[st.EdgesIdx : st.EdgesIdx+st.EdgesLen]
}

// Next follows the transition of s labeled r.
// It reports false when s has no such transition.
//
// Complexity: O(log d) where d is the out-degree of s.
func (a *Automaton) Next(s State, r rune) (State, bool) {
	out := a.outEdges(s)
	i := sort.Search(len(out), func(i int) bool { return out[i].Char >= int32(r) })
	if i < len(out) && out[i].Char == int32(r) {
		return State(out[i].Target), true
	}

	return 0, false
}

// OutTransitions returns the runes labeling the transitions leaving s,
// in ascending order.
func (a *Automaton) OutTransitions(s State) []rune {
	out := a.outEdges(s)
	runes := make([]rune, len(out))
	for i, e := range out {
		runes[i] = rune(e.Char)
	}

	return runes
}

// IsFinal reports whether a lexicon word ends in s.
func (a *Automaton) IsFinal(s State) bool {
	if int(s) >= len(a.states) {
		return false
	}

	return a.states[s].Final != 0
}

// Walk follows word from the initial state and returns the state reached.
// It reports false as soon as a rune has no transition.
func (a *Automaton) Walk(word string) (State, bool) {
	s := a.Initial()
	var ok bool
	for _, r := range word {
		if s, ok = a.Next(s, r); !ok {
			return 0, false
		}
	}

	return s, len(a.states) > 0
}

// Accepts reports whether word is a complete lexicon entry.
func (a *Automaton) Accepts(word string) bool {
	if word == "" || !utf8.ValidString(word) {
		return false
	}
	s, ok := a.Walk(word)

	return ok && a.IsFinal(s)
}

// HasPrefix reports whether some lexicon entry starts with prefix.
func (a *Automaton) HasPrefix(prefix string) bool {
	_, ok := a.Walk(prefix)

	return ok
}

// Closed reports whether Close has been called.
func (a *Automaton) Closed() bool { return a.closed }

// Close releases the file mapping, if any, and empties the tables.
// Queries after Close behave as on an empty automaton. Close is idempotent.
func (a *Automaton) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.states = nil
	a.edges = nil
	if a.mapping == nil {
		return nil
	}
	err := a.mapping.Unmap()
	a.mapping = nil

	return err
}
