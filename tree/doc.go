// Package tree verifies that a *core.Graph is a tree and measures tree
// diameters with the double-BFS technique.
//
// What & Why
//
// A graph on n vertices is a tree iff it is connected and has exactly n-1
// edges. Random spanning trees (see package randtree) are checked with
// Validate before they are measured, so a broken generator fails loudly
// instead of skewing an experiment.
//
// The diameter of a tree is the number of edges on its longest path. Two
// breadth-first searches find it in linear time:
//
//  1. a = FarthestVertex(g, 0)
//  2. b = FarthestVertex(g, a)
//  3. Diameter = dist(a, b)
//
// The first search always ends on one endpoint of some longest path, which
// holds for trees only. On graphs with cycles the procedure still returns a
// value (a lower bound on the true diameter) but callers should not rely on it.
//
// Edge weights are ignored: distances are hop counts. Weighted graphs are
// measured through core.UnweightedView.
//
// Errors
//
//   - ErrGraphNil:   nil graph.
//   - ErrEmptyGraph: graph with no vertices (not a tree, no diameter).
//   - ErrNotTree:    wrapped together with ErrEdgeCount or ErrDisconnected
//     to say which condition failed.
//
// Complexity: every operation is O(V + E).
package tree
