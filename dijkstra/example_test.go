package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/vntok/core"
	"github.com/katalvlaran/vntok/dijkstra"
)

// ExampleShortestPath picks the compound reading of "việt nam" over two
// single syllables.
func ExampleShortestPath() {
	g := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 100, "việt")
	_, _ = g.AddEdge(1, 2, 100, "nam")
	_, _ = g.AddEdge(0, 2, 25, "việt nam")

	path, cost, err := dijkstra.ShortestPath(g, 0, g.Last())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range path {
		fmt.Println(e.Word)
	}
	fmt.Println("cost:", cost)
	// Output:
	// việt nam
	// cost: 25
}
