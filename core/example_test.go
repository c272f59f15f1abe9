package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// ExampleFromMap shows the nested-map constructor, the natural input
// shape when a graph is already held as adjacency data.
func ExampleFromMap() {
	g := core.FromMap(map[string]map[string]int64{
		"s": {"a": 1, "b": 5},
		"a": {"b": 2},
	})

	fmt.Println(g.Vertices())
	edges, _ := g.Neighbors("s")
	for _, e := range edges {
		fmt.Printf("s→%s w=%d\n", e.To, e.Weight)
	}
	// Output:
	// [a b s]
	// s→a w=1
	// s→b w=5
}

// ExampleGraph_AddEdge builds a small undirected graph incrementally.
func ExampleGraph_AddEdge() {
	g := core.NewGraph(core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)

	edges, _ := g.Neighbors("B")
	for _, e := range edges {
		fmt.Printf("B→%s w=%d\n", e.To, e.Weight)
	}
	// Output:
	// B→A w=1
	// B→C w=2
}
