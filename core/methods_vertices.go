// File: methods_vertices.go
// Role: Vertex creation & queries.
//
// Determinism:
//   - Vertices are numbered densely in creation order; Vertices() is ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

// AddVertex appends a new isolated vertex and returns its index.
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Append empty adjacency and incidence buckets.
//
// Returns:
//   - int: the new vertex index, equal to the previous VertexCount().
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked()
}

// AddVertices appends k isolated vertices and returns the index of the first one.
// k <= 0 adds nothing and returns VertexCount().
// Complexity: O(k).
func (g *Graph) AddVertices(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.addVertexLocked()
	}

	return first
}

func (g *Graph) addVertexLocked() int {
	g.adj = append(g.adj, nil)
	g.incident = append(g.incident, nil)

	return len(g.adj) - 1
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(v)
}

func (g *Graph) hasVertexLocked(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Vertices returns all vertex indices in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj))
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree returns the number of edge endpoints at v. A self-loop counts twice,
// so the sum of all degrees is always 2*EdgeCount().
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[v]), nil
}
