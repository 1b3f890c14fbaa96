// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction, edge policies and queries.

package core_test

import (
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestGraph_NewGraph checks vertex numbering and default flags.
func TestGraph_NewGraph(t *testing.T) {
	g := core.NewGraph(4)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	assert.False(t, g.Weighted())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	assert.True(t, g.HasVertex(0))
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(-1))

	empty := core.NewGraph(-3)
	assert.Equal(t, 0, empty.VertexCount())
}

// TestGraph_AddVertex checks that new vertices are appended densely.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph(2)
	assert.Equal(t, 2, g.AddVertex())
	assert.Equal(t, 3, g.AddVertices(4))
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 7, g.AddVertices(0))
	assert.Equal(t, 7, g.VertexCount())
}

// TestGraph_AddEdgeConstraints covers every AddEdge sentinel.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph(3)

	_, err := g.AddEdge(0, 3, Weight0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, 0, Weight0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge(0, 1, Weight1)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge(1, 1, Weight0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge(0, 1, Weight0)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	// reversed orientation is the same undirected pair
	_, err = g.AddEdge(1, 0, Weight0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// rejected edges never bump the counter
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_EdgeIDsAndOrder checks ID assignment and neighbour ordering.
func TestGraph_EdgeIDsAndOrder(t *testing.T) {
	g := core.NewGraph(4)
	mustAddEdges(t, g, [2]int{0, 3}, [2]int{0, 1}, [2]int{2, 0})

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, nbrs)

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
	}
	assert.Equal(t, core.Edge{ID: 2, From: 2, To: 0}, edges[2])
	assert.Equal(t, 2, edges[2].Other(0))
	assert.Equal(t, 0, edges[2].Other(2))

	inc, err := g.IncidentEdges(0)
	require.NoError(t, err)
	require.Len(t, inc, 3)
	for i, e := range inc {
		assert.Equal(t, nbrs[i], e.Other(0))
	}

	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, 1, e.To)
	_, err = g.Edge(3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.IncidentEdges(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_DegreeHandshake verifies sum(deg) == 2|E|, loops included.
func TestGraph_DegreeHandshake(t *testing.T) {
	g := NewGraphFull(3)
	_, err := g.AddEdge(0, 1, Weight1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, Weight2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 2, Weight1)
	require.NoError(t, err)

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, 2*g.EdgeCount(), degreeSum(t, g))

	_, err = g.Degree(3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	stats := g.Stats()
	assert.Equal(t, core.GraphStats{
		Weighted: true, AllowsMulti: true, AllowsLoops: true,
		VertexCount: 3, EdgeCount: 3, LoopCount: 1,
	}, *stats)
}

// TestGraph_HasEdge covers simple and multigraph lookups.
func TestGraph_HasEdge(t *testing.T) {
	g := core.NewGraph(3)
	mustAddEdges(t, g, [2]int{0, 1})
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(1, 7))

	m := NewGraphFull(3)
	_, _ = m.AddEdge(2, 1, Weight1)
	assert.True(t, m.HasEdge(1, 2))
	assert.False(t, m.HasEdge(0, 2))
}

// CloneSuite checks that clones and views are independent of the source.
type CloneSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *CloneSuite) SetupTest() {
	s.g = core.NewGraph(3, core.WithWeighted())
	_, err := s.g.AddEdge(0, 1, Weight1)
	s.Require().NoError(err)
	_, err = s.g.AddEdge(1, 2, Weight2)
	s.Require().NoError(err)
}

func (s *CloneSuite) TestClone() {
	c := s.g.Clone()
	s.Equal(s.g.Edges(), c.Edges())
	s.True(c.Weighted())

	// mutating the clone leaves the source untouched
	_, err := c.AddEdge(0, 2, Weight1)
	s.Require().NoError(err)
	s.Equal(3, c.EdgeCount())
	s.Equal(2, s.g.EdgeCount())
	s.False(s.g.HasEdge(0, 2))

	// pair bookkeeping was copied too
	_, err = c.AddEdge(1, 0, Weight1)
	s.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
}

func (s *CloneSuite) TestCloneEmpty() {
	c := s.g.CloneEmpty()
	s.Equal(3, c.VertexCount())
	s.Equal(0, c.EdgeCount())
	s.True(c.Weighted())
}

func (s *CloneSuite) TestUnweightedView() {
	v := core.UnweightedView(s.g)
	s.False(v.Weighted())
	s.True(s.g.Weighted())
	for _, e := range v.Edges() {
		s.Zero(e.Weight)
	}
	s.Equal(Weight2, s.g.Edges()[1].Weight)

	nbrs, err := v.Neighbors(1)
	s.Require().NoError(err)
	s.Equal([]int{0, 2}, nbrs)
}

func TestCloneSuite(t *testing.T) {
	suite.Run(t, new(CloneSuite))
}
