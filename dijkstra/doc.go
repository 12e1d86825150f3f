// Package dijkstra computes minimum-cost paths over a core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     every reachable vertex, expanding the next-closest vertex from a
//     min-heap.
//   - ShortestPath wraps it for one target and returns the edges of the
//     path, so a caller can read the words along the cheapest segmentation.
//   - The segmenter calls it from vertex 0 to the last vertex of a repaired
//     lattice, capped at the cost of reading every syllable on its own.
//
// Key features:
//
//   - Functional options keep the call signature stable.
//   - Source: the start vertex, 0 by default.
//   - ReturnPath: also return the predecessor slice used to rebuild paths.
//   - MaxDistance: stop exploring beyond a distance; a path costing exactly
//     the cap is still found.
//   - Ties between equal-cost paths keep the path found first, in
//     core.Graph.Neighbors order; the heap breaks distance ties by vertex.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each relaxation may push one heap entry (lazy decrease-key); outdated
//     entries are skipped when popped.
//   - Space: O(V + E)
//   - O(V) for distances and predecessors.
//   - O(E) worst-case heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrVertexNotFound:  source or target outside 0..N.
//   - ErrNegativeWeight:  an edge with negative weight, found by an O(E)
//     pre-scan before any work.
//   - ErrBadMaxDistance:  WithMaxDistance was given a negative value;
//     recorded by the option and returned by Dijkstra.
//   - ErrNoPath:          ShortestPath could not reach the target within
//     the cap.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []int64, prev []int, err error)
//
//	  - dist: dist[v] = minimal distance from Source to v, Unreachable if v
//	          was not reached.
//	  - prev: prev[v] = predecessor of v on one shortest path, -1 for the
//	          source and unreached vertices. Nil unless WithReturnPath.
//
//	func ShortestPath(g *core.Graph, source, target int, opts ...Option) ([]*core.Edge, int64, error)
//
// Usage:
//
//	path, cost, err := dijkstra.ShortestPath(g, 0, g.Last(),
//		dijkstra.WithMaxDistance(100*int64(g.Last())),
//	)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//		// no reading within the cap
//	}
//
// Thread safety:
//
//	core.Graph locks internally, but Dijkstra reads edges vertex by vertex;
//	do not modify the graph while a search runs.
package dijkstra
