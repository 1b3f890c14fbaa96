package tree

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
)

// FarthestVertex runs a BFS from v and returns a vertex at maximum hop
// distance from it. Among several such vertices the first one discovered wins,
// which makes the result deterministic for a given adjacency order.
//
// Errors: ErrGraphNil, bfs.ErrStartVertexNotFound (wrapped) for an invalid v.
// Complexity: O(V + E).
func FarthestVertex(g *core.Graph, v int) (int, error) {
	res, err := search(g, v)
	if err != nil {
		return -1, err
	}
	far, _ := res.Farthest()

	return far, nil
}

// Diameter returns the length in edges of the longest path of the tree g.
//
// Implementation:
//   - a := FarthestVertex(g, 0)
//   - BFS from a; the farthest vertex b lies at distance Diameter.
//
// g is expected to be a tree (see Validate). On other graphs the call still
// succeeds and returns the eccentricity of a, which is not the diameter in
// general.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V + E).
func Diameter(g *core.Graph) (int, error) {
	_, res, b, err := doubleSweep(g)
	if err != nil {
		return 0, err
	}

	return res.Depth[b], nil
}

// DiameterPath returns the vertices a .. b of one longest path of the tree g,
// in BFS order from a. Its length is Diameter(g)+1.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V + E).
func DiameterPath(g *core.Graph) ([]int, error) {
	_, res, b, err := doubleSweep(g)
	if err != nil {
		return nil, err
	}

	return res.PathTo(b)
}

// doubleSweep performs the two BFS passes and returns a, the BFS result
// rooted at a, and the farthest vertex b from a.
func doubleSweep(g *core.Graph) (int, *bfs.Result, int, error) {
	if g == nil {
		return 0, nil, 0, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return 0, nil, 0, ErrEmptyGraph
	}
	h := hops(g)

	a, err := FarthestVertex(h, 0)
	if err != nil {
		return 0, nil, 0, err
	}
	res, err := search(h, a)
	if err != nil {
		return 0, nil, 0, err
	}
	b, _ := res.Farthest()

	return a, res, b, nil
}

// search is bfs.BFS with nil and weight handling shared by this package.
func search(g *core.Graph, start int) (*bfs.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := bfs.BFS(hops(g), start)
	if err != nil {
		return nil, fmt.Errorf("tree: bfs from %d: %w", start, err)
	}

	return res, nil
}
