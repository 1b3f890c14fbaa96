// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append fresh vertices; composing several yields their disjoint union.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors (no panics).
//   - Append their own vertices via g.AddVertices and address them relative to the returned base.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors; branch with errors.Is against
//     ErrTooFewVertices, ErrNeedRNG, ErrInvalidProbability or core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to grow a fixture
// in several steps. A nil graph yields ErrConstructFailed.
// Complexity: O(len(opts)) + Σ constructor cost.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// edgeWeight draws the weight for the next edge: cfg.weightFn on weighted
// graphs, 0 otherwise (core rejects non-zero weights on unweighted graphs).
func edgeWeight(g *core.Graph, cfg builderConfig) float64 {
	if !g.Weighted() {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
