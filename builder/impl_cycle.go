// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices; emits edges i -> (i+1)%n for i=0..n-1 (relative to base).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// It has exactly n edges, so it is never a tree.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
