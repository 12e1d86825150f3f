package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex outside 0..N.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBackwardEdge indicates an edge that does not point forward.
	ErrBackwardEdge = errors.New("core: edge must point forward")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: negative edge weight")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same two vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a word candidate spanning the syllables From..To-1.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	From int
	To   int

	// Weight is the cost of taking this word; lower is preferred.
	Weight int64

	// Word is the text spelled by the edge, syllables joined by single spaces.
	Word string
}

// Graph is a forward-only weighted lattice over the vertices 0..N.
type Graph struct {
	mu sync.RWMutex // guards edges, out and inDeg

	last       int              // N, the highest vertex
	nextEdgeID uint64           // edge ID generator
	edges      map[string]*Edge // edge ID → Edge
	out        [][]*Edge        // out[u] = edges leaving u, in insertion order
	inDeg      []int            // inDeg[v] = number of edges entering v
}

// NewGraph creates an edgeless Graph with the vertices 0..last.
// A negative last is treated as 0, so vertex 0 always exists.
//
// Complexity: O(N).
func NewGraph(last int) *Graph {
	if last < 0 {
		last = 0
	}
	return &Graph{
		last:  last,
		edges: make(map[string]*Edge),
		out:   make([][]*Edge, last+1),
		inDeg: make([]int, last+1),
	}
}
