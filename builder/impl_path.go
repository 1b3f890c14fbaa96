// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n vertices base..base+n-1.
//   • Emits edges base+i - base+i+1 for i = 0..n-2.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
// Its diameter is n-1, the maximum over all trees with n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := g.AddVertices(n)
		for i := 0; i < n-1; i++ {
			u, v := base+i, base+i+1
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
