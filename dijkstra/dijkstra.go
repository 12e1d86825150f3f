package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/vntok/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, Unreachable if v was not reached.
//   - prev: with WithReturnPath, prev[v] is the predecessor of v on its
//     shortest path, -1 for the source and unreached vertices; nil otherwise.
//   - err:  ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight or an option error.
//
// Ties between equal-cost paths keep the path found first, exploring edges
// in core.Graph.Neighbors order.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Graph and source
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Fail fast on negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the edges of a minimum-cost path from source to
// target and its total weight. opts may cap the search with WithMaxDistance;
// Source and WithReturnPath are set by ShortestPath.
// Returns ErrNoPath if target is unreachable within the cap.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) ([]*core.Edge, int64, error) {
	opts = append(opts[:len(opts):len(opts)], Source(source), WithReturnPath())
	dist, prev, err := Dijkstra(g, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	if dist[target] == Unreachable {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	var path []*core.Edge
	for v := target; v != source; v = prev[v] {
		e, err := g.EdgeBetween(prev[v], v)
		if err != nil {
			return nil, 0, fmt.Errorf("dijkstra: edge %d→%d: %w", prev[v], v, err)
		}
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes the source.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in distance order until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every target of u.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	for _, e := range edges {
		// dist[u] <= MaxDistance, so the difference cannot overflow.
		if e.Weight > r.options.MaxDistance-r.dist[u] {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// nodeItem is a vertex with a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then vertex.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
