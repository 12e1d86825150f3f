// Package automaton defines the flat deterministic automaton used to hold
// a word lexicon, together with its binary file format and sentinel errors.
//
// The automaton is stored as two tables:
//
//	states []FlatState - per state: slice bounds into edges + final flag
//	edges  []FlatEdge - per transition: input rune + target state
//
// State 0 is always the initial state. The edges of one state are sorted by
// Char so that Next can binary-search them.
//
// Errors:
//
//	ErrBadMagic   - file does not start with the "VDFA" signature.
//	ErrTruncated  - file is shorter than its header announces.
//	ErrCorrupt    - a table index points outside its table.
//	ErrClosed     - the automaton was closed.
//	ErrEmptyWord  - Builder.Add was given an empty word.
package automaton

import "errors"

// Sentinel errors for automaton loading and building.
var (
	// ErrBadMagic indicates the input is not a serialized automaton.
	ErrBadMagic = errors.New("automaton: bad file signature")

	// ErrTruncated indicates the input ends before the tables announced by the header.
	ErrTruncated = errors.New("automaton: file truncated")

	// ErrCorrupt indicates an edge or state index outside its table.
	ErrCorrupt = errors.New("automaton: corrupt transition table")

	// ErrUnsupportedVersion indicates a format version this package cannot read.
	ErrUnsupportedVersion = errors.New("automaton: unsupported format version")

	// ErrClosed indicates an operation on an automaton after Close.
	ErrClosed = errors.New("automaton: closed")

	// ErrEmptyWord indicates an attempt to add an empty word to a Builder.
	ErrEmptyWord = errors.New("automaton: empty word")
)

// State identifies a node of the automaton. It is an index into the state table.
type State uint32

// Initial is the initial state of every automaton.
const Initial State = 0

// FlatState is the on-disk and in-memory representation of one state.
//
// EdgesIdx and EdgesLen delimit the state's outgoing transitions in the
// edge table. Final is 1 when a lexicon word ends in this state.
type FlatState struct {
	EdgesIdx uint32
	EdgesLen uint32
	Final    uint32
}

// FlatEdge is one transition of the automaton.
type FlatEdge struct {
	Char   int32  // input rune on the transition
	Target uint32 // destination state
}

// magic is the file signature of a serialized automaton.
var magic = [4]byte{'V', 'D', 'F', 'A'}

// formatVersion is the only binary layout this package writes and reads.
const formatVersion uint32 = 1

// Header is the fixed-size prefix of a serialized automaton.
// All integers are little-endian.
type Header struct {
	Magic        [4]byte
	Version      uint32
	StatesOffset int64
	StatesCount  int64
	EdgesOffset  int64
	EdgesCount   int64
}

// Sizes of the fixed records, in bytes.
const (
	headerSize    = 4 + 4 + 8*4
	flatStateSize = 4 * 3
	flatEdgeSize  = 4 * 2
)
