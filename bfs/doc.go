// Package bfs provides breadth-first search over the forward edges of a
// core.Graph, returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following edges only in their direction (from→to).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Reached(v) reports whether v was visited.
//   - OnVisit hook, called once per vertex; returning an error aborts.
//   - Cancellation through a context, checked before each visit.
//
// Why
//
//	The segmenter asks whether the last vertex of a repaired lattice is
//	reachable from vertex 0 before it runs Dijkstra, so an unreachable end
//	surfaces as a plain error instead of a failed path reconstruction.
//
// Determinism
//
//	core.Graph.Neighbors returns edges sorted by target and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth, Parent and visited set.
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// a context error, or a wrapped OnVisit error
//	}
//	if !res.Reached(g.Last()) {
//		// no reading spans the whole phrase
//	}
//
//	res, err = bfs.BFS(g, 0,
//		bfs.WithContext(ctx),
//		bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background context, no-op OnVisit.
//   - WithContext(ctx): cancellation and deadlines; nil is an option violation.
//   - WithOnVisit(fn):  visit hook; nil is an option violation.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside 0..N.
//   - ErrOptionViolation      if an Option was given an invalid value.
//   - ctx.Err() on cancellation; the partial Result is returned with it.
//   - Wrapped errors returned by OnVisit.
package bfs
