// File: methods_edges.go
// Role: Edge creation & queries: AddEdge/HasEdge/Neighbors/IncidentEdges/Edge/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are insertion indices; Edges() is ordered by ID.
//   - Neighbors(v) lists neighbours in the order their edges were added.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddEdge creates a new undirected edge (u,v) with the given weight and
// returns its ID.
//
// Steps:
//  1. Validate endpoints, weight, loops.
//  2. If multi-edges are disabled, reject an already connected pair.
//  3. Append the Edge to the catalog (ID = previous EdgeCount()).
//  4. Append v to adj[u] and u to adj[v] (a loop is appended twice to adj[v]).
//
// Errors:
//   - ErrVertexNotFound, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(u) || !g.hasVertexLocked(v) {
		return -1, ErrVertexNotFound
	}
	if !g.weighted && weight != 0 {
		return -1, ErrBadWeight
	}
	if u == v && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}
	if !g.allowMulti {
		key := makePair(u, v)
		if _, dup := g.pairs[key]; dup {
			return -1, ErrMultiEdgeNotAllowed
		}
		g.pairs[key] = struct{}{}
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: weight})

	g.adj[u] = append(g.adj[u], v)
	g.incident[u] = append(g.incident[u], id)
	g.adj[v] = append(g.adj[v], u)
	g.incident[v] = append(g.incident[v], id)

	return id, nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1) when multi-edges are disabled, O(min(deg(u),deg(v))) otherwise.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(u) || !g.hasVertexLocked(v) {
		return false
	}
	if !g.allowMulti {
		_, ok := g.pairs[makePair(u, v)]
		return ok
	}
	if len(g.adj[v]) < len(g.adj[u]) {
		u, v = v, u
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of the adjacency list of v, in edge insertion order.
// Parallel edges yield repeated neighbours.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// IncidentEdges returns the edges touching v, index-aligned with Neighbors(v).
// Complexity: O(deg(v)).
func (g *Graph) IncidentEdges(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(g.incident[v]))
	for i, id := range g.incident[v] {
		out[i] = g.edges[id]
	}

	return out, nil
}

// Edge returns the edge with the given ID.
// Errors: ErrEdgeNotFound. Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// Edges returns a copy of the edge catalog ordered by ID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges added so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
