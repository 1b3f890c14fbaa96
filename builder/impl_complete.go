// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair {i,j}, i<j, in row-major order (i asc, then j asc).
//   • Weights are drawn in emission order, so a seeded RNG fixes the whole weighting.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// On a weighted graph with WithUniformWeight(0, 1) this is the input to
// random spanning trees drawn by Kruskal.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := base+i, base+j
				w := edgeWeight(g, cfg)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
