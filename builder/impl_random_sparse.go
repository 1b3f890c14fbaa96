// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   • Erdős–Rényi G(n, p): each unordered pair {i,j}, i<j, is kept independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRNG); p ∈ {0,1} is deterministic.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   • Trial order is i asc, j asc; for each kept pair the weight is drawn right after the trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
// Such graphs are useful negative fixtures: they are rarely trees.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRNG)
		}

		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case rng.Float64() >= p:
					continue
				}
				u, v := base+i, base+j
				w := edgeWeight(g, cfg)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
