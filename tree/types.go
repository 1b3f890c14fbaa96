package tree

import (
	"errors"

	"github.com/katalvlaran/spantree/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("tree: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("tree: graph has no vertices")

	// ErrNotTree is the umbrella error returned by Validate.
	ErrNotTree = errors.New("tree: graph is not a tree")

	// ErrEdgeCount means EdgeCount() != VertexCount()-1.
	ErrEdgeCount = errors.New("tree: edge count is not vertex count minus one")

	// ErrDisconnected means a BFS from vertex 0 misses some vertex.
	ErrDisconnected = errors.New("tree: graph is disconnected")
)

// hops returns a graph BFS can walk: g itself, or an unweighted copy of it.
func hops(g *core.Graph) *core.Graph {
	if g.Weighted() {
		return core.UnweightedView(g)
	}

	return g
}
