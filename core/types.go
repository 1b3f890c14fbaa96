// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying undirected graphs whose
// vertices are the dense integers 0..n-1.
//
// A single sync.RWMutex guards the adjacency lists and the edge catalog, so a
// Graph can be read from many goroutines while one goroutine builds it.
//
// This file declares Edge, Graph, GraphOption, GraphStats, the sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - vertex index outside 0..VertexCount()-1.
//	ErrEdgeNotFound        - edge ID outside 0..EdgeCount()-1.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// ID is the insertion index of the edge (0 for the first AddEdge, 1 for the
// second, ...). From and To keep the argument order of AddEdge; the edge is
// traversable in both directions.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID int

	// From is the first endpoint as passed to AddEdge.
	From int

	// To is the second endpoint as passed to AddEdge.
	To int

	// Weight is the cost of the edge; always 0 on unweighted graphs.
	Weight float64
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, From is returned.
func (e Edge) Other(v int) int {
	if v == e.From {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pairKey is the normalized (min,max) endpoint pair used for multi-edge checks.
type pairKey struct{ lo, hi int }

func makePair(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is an undirected graph stored as adjacency lists.
//
// adj[v] lists the neighbours of v in edge insertion order; an edge (u,v)
// appears once in adj[u] and once in adj[v], a loop (v,v) appears twice in adj[v].
// incident[v] holds the matching edge IDs, index-aligned with adj[v].
// pairs is only maintained when multi-edges are disabled.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	adj      [][]int
	incident [][]int
	edges    []Edge
	pairs    map[pairKey]struct{}
}

// NewGraph creates a Graph with n isolated vertices 0..n-1 and the given options.
// A negative n is treated as 0.
// By default the Graph is unweighted, with no loops and no multi-edges.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adj:      make([][]int, n),
		incident: make([][]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	if !g.allowMulti {
		g.pairs = make(map[pairKey]struct{})
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int
	LoopCount   int
}
