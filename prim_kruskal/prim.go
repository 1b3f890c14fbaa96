// File: prim.go
// Role: Prim's MST grown from a root vertex with a container/heap priority queue.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/spantree/core"
)

// Prim computes a Minimum Spanning Tree by growing outwards from root.
//
// Implementation:
//   - Stage 1: Validate graph and root. |V|==0 → ErrDisconnected.
//   - Stage 2: Mark root visited, push its incident edges to a min-heap.
//   - Stage 3: Pop the lightest edge; if it reaches an unvisited vertex, keep it
//     and push that vertex's incident edges toward unvisited neighbours.
//   - Stage 4: Fewer than |V|-1 edges collected → ErrDisconnected.
//
// Equal weights pop in ascending edge ID order.
//
// Errors:
//   - ErrInvalidGraph if graph is nil or unweighted.
//   - core.ErrVertexNotFound if root is out of range.
//   - ErrDisconnected if |V|==0 or not every vertex is reachable from root.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	var (
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		pq          = &edgePQ{}
		totalWeight float64
	)
	heap.Init(pq)

	// grow marks v visited and offers every edge that leaves the tree through v.
	grow := func(v int) error {
		visited[v] = true
		incident, err := graph.IncidentEdges(v)
		if err != nil {
			return err
		}
		for _, e := range incident {
			to := e.Other(v)
			if to < n && !visited[to] {
				heap.Push(pq, candidate{edge: e, to: to})
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, c.edge)
		totalWeight += c.edge.Weight
		if err := grow(c.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidate is an edge crossing the cut, with the endpoint outside the tree.
type candidate struct {
	edge core.Edge
	to   int
}

// edgePQ implements heap.Interface as a min-heap ordered by (Weight, ID).
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element; heap.Pop has already moved the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
