// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// Unreached marks Depth and Parent entries of vertices the search did not reach.
const Unreached = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits the search to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit. A negative limit means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal makes DFS cover every component of the graph.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult collects the traversal outcome.
//   - Order:     vertices in pre-order (discovery order).
//   - PostOrder: vertices in post-order (finish order).
//   - Depth:     depth in the DFS forest, Unreached if never discovered.
//   - Parent:    DFS-forest parent, Unreached for roots and undiscovered vertices.
//   - Roots:     the vertex each DFS tree was started from; len(Roots) is the
//     number of components explored.
type DFSResult struct {
	Order     []int
	PostOrder []int
	Depth     []int
	Parent    []int
	Roots     []int
}
