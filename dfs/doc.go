// Package dfs provides depth-first traversal and undirected cycle finding
// over a core.Graph.
//
// What
//
//   - DFS(g, start, opts...) returns pre-order, post-order, depth and parent
//     labels, optionally for the whole forest (WithFullTraversal).
//   - FindCycle(g) returns one simple cycle of an undirected multigraph, or
//     nil when g is a forest. Self-loops and parallel edges count as cycles.
//
// Why
//
//	A graph with n vertices and n-1 edges is a tree exactly when it is
//	connected, and exactly when it is acyclic. Package tree uses BFS for the
//	connectivity half and FindCycle to name the offending cycle when a
//	candidate spanning tree fails validation.
//
// Determinism
//
//	Roots are taken in ascending vertex order and neighbours in edge
//	insertion order, so Order, PostOrder and the reported cycle are stable.
package dfs
