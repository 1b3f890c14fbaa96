package randtree

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// Kruskal generates a spanning tree of K_n as the MST of uniform random weights.
//
// Implementation:
//   - Stage 1: builder.Complete(n) on a weighted graph, weights U[0,1) from rng.
//   - Stage 2: prim_kruskal.Kruskal on that graph.
//   - Stage 3: copy the MST edges, in the order Kruskal accepted them, into a
//     fresh unweighted graph.
//
// Errors: ErrInvalidSize (n < 1), ErrNeedRNG, wrapped builder/MST errors.
// Complexity: O(n² log n) time, O(n²) memory for K_n.
func Kruskal(n int, rng *rand.Rand) (*core.Graph, error) {
	if err := checkArgs(n, rng); err != nil {
		return nil, err
	}

	kn, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithUniformWeight(0, 1)},
		builder.Complete(n),
	)
	if err != nil {
		return nil, fmt.Errorf("randtree: complete graph: %w", err)
	}

	mst, _, err := prim_kruskal.Kruskal(kn)
	if err != nil {
		return nil, fmt.Errorf("randtree: kruskal: %w", err)
	}

	g := core.NewGraph(n)
	for _, e := range mst {
		if _, err := g.AddEdge(e.From, e.To, 0); err != nil {
			return nil, fmt.Errorf("randtree: copy edge %d-%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
