// File: types.go
// Role: Sentinel errors, method names and the MSTOptions dispatch for MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/spantree/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil weighted graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a weighted graph")

// ErrDisconnected indicates that no spanning tree covers all vertices.
// Returned for an empty graph as well, since there is nothing to span.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and, for Prim, the root vertex.
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex for Prim; ignored by Kruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// Option mutates MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Kruskal rooted at vertex 0, with opts applied in order.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal, Root: 0}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute dispatches to Kruskal or Prim according to opts.Method.
//
// Errors:
//   - ErrUnknownMethod for any other method name.
//   - whatever the selected algorithm returns.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
