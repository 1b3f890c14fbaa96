// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex indices, edge IDs and neighbour order.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// viewEdgeWeightZero is the weight every edge carries in an unweighted view.
const viewEdgeWeightZero float64 = 0

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off. The input graph is not
// mutated. Hop-count algorithms (bfs, tree) accept the view where they reject
// the weighted original.
//
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	out := g.Clone()
	out.weighted = false
	for i := range out.edges {
		out.edges[i].Weight = viewEdgeWeightZero
	}

	return out
}
