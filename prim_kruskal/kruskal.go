// File: kruskal.go
// Role: Kruskal's MST over the integer-indexed core.Graph, merging components with dsu.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dsu"
)

// Kruskal computes a Minimum Spanning Tree of an undirected, weighted graph.
//
// Implementation:
//   - Stage 1: Validate graph (non-nil, weighted). |V|==0 → ErrDisconnected, |V|==1 → empty MST.
//   - Stage 2: Snapshot edges (ascending ID), drop self-loops, stable-sort by Weight.
//   - Stage 3: Walk sorted edges; keep an edge iff dsu.Union merges two components.
//   - Stage 4: Stop at |V|-1 edges; fewer means the graph is disconnected.
//
// Ties between equal weights are broken by edge ID, so the output is
// deterministic for a given graph.
//
// Errors:
//   - ErrInvalidGraph if graph is nil or unweighted.
//   - ErrDisconnected if |V|==0 or no spanning tree exists.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue // a loop never joins two components
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	var (
		sets        = dsu.New(n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !sets.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
