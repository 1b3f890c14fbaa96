// Package core provides a small, thread-safe, in-memory undirected graph
// whose vertices are the dense integers 0..n-1.
//
// The Graph G = (V,E) is stored as adjacency lists:
//
//   - adj[v] lists the neighbours of v in edge insertion order
//   - every edge is also kept in a catalog indexed by its ID (0, 1, 2, ...)
//   - an edge (u,v) is mirrored in adj[u] and adj[v]
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) or AddEdge(v,u) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Allows self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Directed edges and edge removal are deliberately absent: the graphs built
// here are spanning-tree candidates, grown once and then measured.
//
// Determinism
//
//	Vertices(), Edges(), Neighbors() and IncidentEdges() return results in a
//	fixed order (ascending index / insertion order), so every traversal built
//	on top of core is reproducible.
//
// Complexity
//
//   - AddVertex, AddEdge: O(1) amortized
//   - Neighbors(v), IncidentEdges(v): O(deg(v))
//   - Edges(), Clone(): O(V + E)
//
// Usage
//
//	g := core.NewGraph(3)
//	_, _ = g.AddEdge(0, 1, 0)
//	_, _ = g.AddEdge(1, 2, 0)
//	nbrs, _ := g.Neighbors(1) // [0 2]
package core
