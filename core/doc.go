// Package core provides the segmentation lattice: a thread-safe, weighted,
// directed graph over the integer vertices 0..N.
//
// Vertex i is the gap before the i-th syllable of a phrase, so a phrase of N
// syllables has the vertices 0..N. An edge i→j is a word candidate spelling
// the syllables i..j-1; its weight is the cost of reading those syllables as
// one word, lower being preferred.
//
// What
//
//   - Fixed vertex set 0..N chosen at NewGraph; vertex 0 always exists.
//   - Forward-only edges (from < to), so every Graph is acyclic by
//     construction and vertex order is a topological order.
//   - At most one edge per (from, to) span; a second AddEdge for the same
//     span returns ErrMultiEdgeNotAllowed and leaves the graph unchanged.
//   - Non-negative int64 weights.
//   - Sequential edge IDs ("e1", "e2", ...) in insertion order.
//   - One sync.RWMutex guarding the edge catalog, adjacency and in-degrees.
//
// Why
//
//   - Dijkstra over a forward-only lattice yields the cheapest segmentation.
//   - In-degrees and weak components expose the gaps left by unknown
//     syllables, which the segmenter repairs before searching.
//
// Determinism
//
//	Neighbors and Edges return edges sorted by source, then target, so
//	traversals built on them visit vertices in a reproducible order.
//
// Methods
//
//	// Shape
//	Order() int                             // O(1), N+1
//	Last() int                              // O(1), N
//	HasVertex(v int) bool                   // O(1)
//
//	// Edges
//	AddEdge(from, to int, weight int64, word string) (string, error) // O(d)
//	HasEdge(from, to int) bool              // O(d)
//	EdgeBetween(from, to int) (*Edge, error)// O(d)
//	Neighbors(v int) ([]*Edge, error)       // O(d·log d)
//	Edges() []*Edge                         // O(E·log E)
//	EdgeCount() int                         // O(1)
//
//	// Degrees and connectivity
//	InDegree(v int) (int, error)            // O(1)
//	OutDegree(v int) (int, error)           // O(1)
//	IsolatedVertices() []int                // O(V), vertices no edge enters
//	Components() [][]int                    // O(V+E), weak components
//	CountComponents() int                   // O(V+E)
//
// Usage
//
//	g := core.NewGraph(3) // "học sinh giỏi"
//	if _, err := g.AddEdge(0, 2, 25, "học sinh"); err != nil {
//		// ErrVertexOutOfRange, ErrBackwardEdge, ErrBadWeight or
//		// ErrMultiEdgeNotAllowed
//	}
//	g.IsolatedVertices() // [0 1 3]
//	g.CountComponents()  // 3
//
// Errors
//
//	ErrVertexOutOfRange    - vertex outside 0..N.
//	ErrBackwardEdge        - edge with from >= to.
//	ErrBadWeight           - negative edge weight.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrMultiEdgeNotAllowed - a second edge between the same vertices.
package core
