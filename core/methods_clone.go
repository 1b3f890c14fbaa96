// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertex count, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return NewGraph(len(g.adj), g.optionsLocked()...)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Edge IDs and neighbour order are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(len(g.adj), g.optionsLocked()...)
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for v := range g.adj {
		clone.adj[v] = append([]int(nil), g.adj[v]...)
		clone.incident[v] = append([]int(nil), g.incident[v]...)
	}
	for k := range g.pairs {
		clone.pairs[k] = struct{}{}
	}

	return clone
}

// optionsLocked rebuilds the GraphOption list describing g's flags.
// Caller must hold at least the read lock.
func (g *Graph) optionsLocked() []GraphOption {
	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
