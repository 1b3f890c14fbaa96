package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
)

// ExampleBFS_GridTraversal demonstrates BFS layering on a 3×3 grid.
// Vertex r*3+c sits at row r, column c.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := r*3 + c
			if c+1 < 3 {
				_, _ = g.AddEdge(v, v+1, 0)
			}
			if r+1 < 3 {
				_, _ = g.AddEdge(v, v+3, 0)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleResult_Farthest finds the vertex farthest from the start.
func ExampleResult_Farthest() {
	g := core.NewGraph(5)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(0, 3, 0)
	_, _ = g.AddEdge(3, 4, 0)

	res, _ := bfs.BFS(g, 1)
	v, d := res.Farthest()
	path, _ := res.PathTo(v)
	fmt.Println(v, d, path)
	// Output:
	// 4 3 [1 0 3 4]
}
