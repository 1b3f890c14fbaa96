package tree

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dfs"
)

// Validate reports why g is not a tree, or nil if it is one.
//
// Implementation:
//   - Stage 1: n == 0 → ErrNotTree + ErrEmptyGraph.
//   - Stage 2: EdgeCount() != n-1 → ErrNotTree + ErrEdgeCount.
//   - Stage 3: BFS from vertex 0; fewer than n vertices reached →
//     ErrNotTree + ErrDisconnected. With n-1 edges and a missing vertex the
//     reached part must contain a cycle; dfs.FindCycle names one in the message.
//
// Errors: ErrGraphNil, or a wrapped ErrNotTree as above (match with errors.Is).
// Complexity: O(V + E).
func Validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return fmt.Errorf("%w: %w", ErrNotTree, ErrEmptyGraph)
	}
	if m := g.EdgeCount(); m != n-1 {
		return fmt.Errorf("%w: %w: %d edges for %d vertices", ErrNotTree, ErrEdgeCount, m, n)
	}

	res, err := bfs.BFS(hops(g), 0)
	if err != nil {
		return fmt.Errorf("tree: bfs from 0: %w", err)
	}
	if reached := res.VisitedCount(); reached < n {
		cycle, cerr := dfs.FindCycle(g)
		if cerr != nil {
			return fmt.Errorf("tree: find cycle: %w", cerr)
		}

		return fmt.Errorf("%w: %w: %d of %d vertices reachable from 0, cycle %v",
			ErrNotTree, ErrDisconnected, reached, n, cycle)
	}

	return nil
}

// IsTree reports whether g is a tree. Only a nil graph produces an error;
// every other failed condition is a plain false.
func IsTree(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	return Validate(g) == nil, nil
}
