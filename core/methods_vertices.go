package core

import "sort"

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexOutOfRange
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inDeg[v], nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexOutOfRange
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[v]), nil
}

// IsolatedVertices returns, in ascending order, the vertices that no edge
// enters. Vertex 0 is always among them.
func (g *Graph) IsolatedVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var iso []int
	for v, d := range g.inDeg {
		if d == 0 {
			iso = append(iso, v)
		}
	}

	return iso
}

// Components returns the weakly connected components, ignoring edge
// direction. Each component lists its vertices in ascending order, and
// components are ordered by their smallest vertex.
//
// Time: O(V+E). Memory: O(V+E) for the undirected view.
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	adj := make([][]int, g.last+1)
	for u, list := range g.out {
		for _, e := range list {
			adj[u] = append(adj[u], e.To)
			adj[e.To] = append(adj[e.To], u)
		}
	}
	g.mu.RUnlock()

	seen := make([]bool, len(adj))
	var comps [][]int
	for v0 := range adj {
		if seen[v0] {
			continue
		}
		// BFS to collect the component
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, w := range adj[queue[qi]] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// CountComponents returns the number of weakly connected components.
func (g *Graph) CountComponents() int { return len(g.Components()) }
