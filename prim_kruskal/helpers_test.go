package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/require"
)

// wedge is a compact weighted-edge fixture.
type wedge struct {
	u, v int
	w    float64
}

// buildWeighted returns a weighted graph with n vertices and the given edges.
func buildWeighted(t testing.TB, n int, edges []wedge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(n, append([]core.GraphOption{core.WithWeighted()}, opts...)...)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err, "AddEdge(%d,%d)", e.u, e.v)
	}

	return g
}

// buildTriangle returns 0-1(1), 1-2(2), 0-2(3).
func buildTriangle(t testing.TB) *core.Graph {
	return buildWeighted(t, 3, []wedge{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})
}

// randomConnected returns a connected weighted graph: a random spanning path
// plus extra random edges, every weight drawn from [0,1).
func randomConnected(t testing.TB, seed int64, n, extra int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(n, core.WithWeighted())
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(perm[i-1], perm[i], rng.Float64())
		require.NoError(t, err)
	}
	for added := 0; added < extra; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		_, err := g.AddEdge(u, v, rng.Float64())
		require.NoError(t, err)
		added++
	}

	return g
}

// pairsOf returns the normalised (lo,hi) endpoint set of edges.
func pairsOf(edges []core.Edge) map[[2]int]bool {
	out := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[[2]int{u, v}] = true
	}

	return out
}
