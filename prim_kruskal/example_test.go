package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// ExampleKruskal runs Kruskal on a weighted triangle.
// The MST is {0-1, 1-2} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph(3, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: 0-1 1-2
}

// ExamplePrim grows an MST over a pentagon 0-1(1), 1-2(2), 2-3(3), 3-4(5), 0-4(12).
func ExamplePrim() {
	g := core.NewGraph(5, core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 4, 12)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(2, 3, 3)
	_, _ = g.AddEdge(3, 4, 5)

	edges, total, err := prim_kruskal.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}
