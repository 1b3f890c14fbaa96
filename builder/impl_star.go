// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first appended vertex (base); leaves are base+1..base+n-1.
//   • Emits spokes hub - leaf in increasing leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// For n ≥ 3 its diameter is 2, the minimum over all trees with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.AddVertices(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(hub, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodStar, hub, leaf, w, err)
			}
		}

		return nil
	}
}
