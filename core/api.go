// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only policy getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity:
//   - Time O(1), Space O(1). Takes the read lock.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (u==v) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1). Takes the read lock.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// If false, AddEdge rejects duplicates with ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1). Takes the read lock.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes, including the number of self-loops.
//
// Implementation:
//   - Stage 1: Acquire the read lock and copy the flags and sizes.
//   - Stage 2: Scan the edge catalog once to count loops.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.adj),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}

	return &stats
}
