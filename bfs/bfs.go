// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker encapsulates mutable BFS state.
// The queue is a slice consumed through head, so every vertex is
// appended once and never copied.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// ErrNeighbors for graph failures, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v discovered at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.dequeue()
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the next vertex and invokes OnDequeue.
func (w *walker) dequeue() int {
	v := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(v, w.res.Depth[v])

	return v
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// undiscovered neighbor of v.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, v, err)
	}
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// vertices appended after the search started are out of scope
		if nbr >= len(w.res.Depth) || w.res.Depth[nbr] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, v)
	}

	return nil
}
