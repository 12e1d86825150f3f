package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// Order returns the number of vertices, N+1.
func (g *Graph) Order() int { return g.last + 1 }

// Last returns N, the final vertex of the lattice.
func (g *Graph) Last() int { return g.last }

// HasVertex reports whether v is in 0..N.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v <= g.last }

// AddEdge inserts the edge from→to and returns its ID.
//
// Returns ErrVertexOutOfRange, ErrBackwardEdge, ErrBadWeight or
// ErrMultiEdgeNotAllowed; the graph is unchanged on error.
// Complexity: O(1) amortized, O(d) for the parallel-edge check.
func (g *Graph) AddEdge(from, to int, weight int64, word string) (string, error) {
	// 1) Endpoints
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return "", fmt.Errorf("%w: %d→%d of 0..%d", ErrVertexOutOfRange, from, to, g.last)
	}
	// 2) Direction
	if from >= to {
		return "", fmt.Errorf("%w: %d→%d", ErrBackwardEdge, from, to)
	}
	// 3) Weight
	if weight < 0 {
		return "", ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) One word per span
	if g.findLocked(from, to) != nil {
		return "", ErrMultiEdgeNotAllowed
	}

	// 5) Store
	g.nextEdgeID++
	e := &Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:   from,
		To:     to,
		Weight: weight,
		Word:   word,
	}
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	g.inDeg[to]++

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	if !g.HasVertex(from) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findLocked(from, to) != nil
}

// EdgeBetween returns the edge from→to.
// Returns ErrEdgeNotFound if there is none.
func (g *Graph) EdgeBetween(from, to int) (*Edge, error) {
	if !g.HasVertex(from) {
		return nil, ErrVertexOutOfRange
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e := g.findLocked(from, to); e != nil {
		return e, nil
	}

	return nil, ErrEdgeNotFound
}

// findLocked returns the edge from→to, or nil. Caller holds g.mu.
func (g *Graph) findLocked(from, to int) *Edge {
	for _, e := range g.out[from] {
		if e.To == to {
			return e
		}
	}

	return nil
}

// Neighbors returns the edges leaving v, sorted by target.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v int) ([]*Edge, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexOutOfRange
	}
	g.mu.RLock()
	out := append([]*Edge(nil), g.out[v]...)
	g.mu.RUnlock()
	sortEdges(out)

	return out, nil
}

// Edges returns all edges sorted by source, then target.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	all := make([]*Edge, 0, len(g.edges))
	for _, list := range g.out {
		all = append(all, list...)
	}
	g.mu.RUnlock()
	sortEdges(all)

	return all
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i], es[j]
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})
}
