// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_edges.go - implementation of Edges(n, pairs) constructor.
//
// Contract:
//   • n ≥ 0 vertices are appended; pairs index them as 0..n-1.
//   • Pairs are emitted in slice order; endpoint validation is left to core
//     (out of range → core.ErrVertexNotFound, loops/multi-edges per graph flags).
//
// Complexity: O(n + len(pairs)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that appends n vertices and the listed edges,
// the usual way to spell out a hand-made fixture.
func Edges(n int, pairs [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < min=0: %w", methodEdges, n, ErrTooFewVertices)
		}

		base := g.AddVertices(n)
		for _, p := range pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("%s: pair (%d,%d) outside 0..%d: %w", methodEdges, p[0], p[1], n-1, core.ErrVertexNotFound)
			}
			u, v := base+p[0], base+p[1]
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodEdges, u, v, w, err)
			}
		}

		return nil
	}
}
