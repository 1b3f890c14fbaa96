package randtree

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spantree/core"
)

// RandomWalk generates a spanning tree of K_n by a random walk.
//
// Implementation:
//   - u := 0, visited = {0}.
//   - Repeat until n-1 edges: draw v uniformly from 0..n-1; if v is unvisited,
//     add edge (u, v) and mark v; then move u := v (also when v was visited).
//
// Every added edge joins a visited vertex to a new one, so the result is a
// tree by construction.
//
// Errors: ErrInvalidSize (n < 1), ErrNeedRNG.
// Complexity: O(n log n) expected steps, O(n) memory.
func RandomWalk(n int, rng *rand.Rand) (*core.Graph, error) {
	if err := checkArgs(n, rng); err != nil {
		return nil, err
	}

	g := core.NewGraph(n)
	visited := make([]bool, n)
	u := 0
	visited[u] = true

	for edges := 0; edges < n-1; {
		v := rng.Intn(n)
		if !visited[v] {
			if _, err := g.AddEdge(u, v, 0); err != nil {
				return nil, fmt.Errorf("randtree: random walk edge %d-%d: %w", u, v, err)
			}
			visited[v] = true
			edges++
		}
		u = v
	}

	return g, nil
}
