// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: Depth[v] = distance (edges) from start, Unreached (-1) otherwise
//   - Parent: Parent[v] = predecessor in the BFS tree
//   - Result.Farthest reports the first-visited vertex at maximum depth, the
//     building block of the double-BFS tree diameter (package tree).
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Neighbors returns neighbours in edge insertion order and BFS
//	enqueues them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	far, d := res.Farthest()
//
//	res, err = bfs.BFS(
//	    g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph (see core.UnweightedView).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
