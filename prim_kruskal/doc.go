// Package prim_kruskal computes Minimum Spanning Trees on an undirected,
// weighted *core.Graph.
//
// What & Why
//
// Given a connected weighted graph G = (V, E), a minimum spanning tree is an
// edge subset T ⊆ E that connects all of V with minimum total weight. On a
// complete graph with i.i.d. uniform weights the MST is a uniformly-flavoured
// random spanning tree, which is how randtree.Kruskal draws its samples.
//
// Algorithms
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Stable-sort edges by weight, merge components with dsu.DisjointSet,
//     stop at |V|-1 edges. O(E log E + α(V)·E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root, always taking the lightest crossing edge from
//     a container/heap min-heap. O(E log E).
//
//   - Compute(g, DefaultOptions(WithMethod(MethodPrim), WithRoot(3)))
//     Dispatches to one of the above.
//
// Determinism
//
// Both algorithms break weight ties by edge ID, so repeated runs on the same
// graph return the same edges in the same order.
//
// Errors
//
//   - ErrInvalidGraph: nil or unweighted graph.
//   - ErrDisconnected: empty graph, or no spanning tree exists.
//   - core.ErrVertexNotFound: Prim root out of range.
//   - ErrUnknownMethod: Compute with an unsupported method name.
package prim_kruskal
