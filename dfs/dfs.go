// Package dfs implements depth‑first search (single‑source and forest) and
// undirected cycle finding on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//   - FindCycle(g): one simple cycle of an undirected (multi)graph, or nil
//
// The traversal keeps an explicit stack instead of recursing, so path-like
// graphs with many thousands of vertices do not grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks.
//   - Memory: O(V) for the stack and per-vertex metadata.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	v    int   // vertex being explored
	nbrs []int // snapshot of v's neighbours
	next int   // index of the next neighbour to inspect
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	state []int
	res   *DFSResult
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components, starting with start; otherwise it
// explores only start's component.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		state: make([]int, n),
		res: &DFSResult{
			Order:     make([]int, 0, n),
			PostOrder: make([]int, 0, n),
			Depth:     make([]int, n),
			Parent:    make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	if err := w.run(start); err != nil {
		return nil, err
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if w.state[v] != White {
				continue
			}
			if err := w.run(v); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

// run explores the tree rooted at root.
func (w *dfsWalker) run(root int) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, Unreached, 0); err != nil {
		return err
	}
	stack := []frame{{v: root, nbrs: w.neighbors(root)}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			if err := w.finish(top.v); err != nil {
				return err
			}
			continue
		}
		u := top.nbrs[top.next]
		top.next++
		if u >= len(w.state) || w.state[u] != White {
			continue
		}
		d := w.res.Depth[top.v] + 1
		if w.opts.MaxDepth >= 0 && d > w.opts.MaxDepth {
			continue
		}
		if err := w.discover(u, top.v, d); err != nil {
			return err
		}
		stack = append(stack, frame{v: u, nbrs: w.neighbors(u)})
	}

	return nil
}

func (w *dfsWalker) neighbors(v int) []int {
	// v is always a valid vertex here, so the error is impossible.
	nbrs, _ := w.graph.Neighbors(v)

	return nbrs
}

// discover marks v Gray, records depth/parent and runs OnVisit.
func (w *dfsWalker) discover(v, parent, depth int) error {
	w.state[v] = Gray
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %d: %w", v, err)
		}
	}

	return nil
}

// finish marks v Black and runs OnExit.
func (w *dfsWalker) finish(v int) error {
	w.state[v] = Black
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit error at %d: %w", v, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
