package dfs

import (
	"github.com/katalvlaran/spantree/core"
)

// edgeFrame is one level of the cycle-search stack. It tracks the edge used
// to enter v so that walking back over that same edge is not mistaken for a
// cycle, while a parallel edge (different ID) still is.
type edgeFrame struct {
	v      int
	inEdge int
	inc    []core.Edge
	next   int
}

// FindCycle returns one simple cycle of the undirected graph g as a vertex
// sequence c[0], c[1], ..., c[k-1] where consecutive vertices (and c[k-1],c[0])
// are joined by distinct edges. It returns nil if g is a forest.
//
// Special cases:
//   - a self-loop (v,v) is reported as the 1-cycle [v];
//   - two parallel edges between u and v are reported as the 2-cycle [u v].
//
// Components are scanned in ascending vertex order and neighbours in edge
// insertion order, so the returned cycle is deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	state := make([]int, n)
	// pos[v] is v's index on the stack while v is Gray
	pos := make([]int, n)

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		stack := []edgeFrame{{v: root, inEdge: Unreached, inc: incident(g, root)}}
		state[root] = Gray
		pos[root] = 0

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.inc) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.inc[top.next]
			top.next++
			if e.ID == top.inEdge {
				continue
			}
			u := e.Other(top.v)
			switch state[u] {
			case White:
				state[u] = Gray
				pos[u] = len(stack)
				stack = append(stack, edgeFrame{v: u, inEdge: e.ID, inc: incident(g, u)})
			case Gray:
				cycle := make([]int, 0, len(stack)-pos[u])
				for i := pos[u]; i < len(stack); i++ {
					cycle = append(cycle, stack[i].v)
				}
				return cycle, nil
			}
		}
	}

	return nil, nil
}

// HasCycle reports whether the undirected graph g contains any cycle.
func HasCycle(g *core.Graph) (bool, error) {
	c, err := FindCycle(g)
	if err != nil {
		return false, err
	}

	return c != nil, nil
}

func incident(g *core.Graph, v int) []core.Edge {
	// v is always a valid vertex here, so the error is impossible.
	inc, _ := g.IncidentEdges(v)

	return inc
}
