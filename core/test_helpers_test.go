// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for spantree/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewGraphFull returns a Graph of n vertices with every capability enabled.
func NewGraphFull(n int) *core.Graph {
	return core.NewGraph(n, core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}

// mustAddEdges adds every (u,v) pair with zero weight and fails the test on error.
func mustAddEdges(t *testing.T, g *core.Graph, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], Weight0)
		require.NoError(t, err, "AddEdge(%d,%d)", p[0], p[1])
	}
}

// degreeSum returns the sum of Degree(v) over all vertices.
func degreeSum(t *testing.T, g *core.Graph) int {
	t.Helper()
	sum := 0
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		sum += d
	}

	return sum
}
