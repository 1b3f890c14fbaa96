package tree_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds an unweighted graph on n vertices from an edge list.
func fixture(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Edges(n, pairs))
	require.NoError(t, err)

	return g
}

// randomRecursiveTree attaches vertex i to a uniform earlier vertex.
func randomRecursiveTree(t testing.TB, rng *rand.Rand, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(rng.Intn(i), i, 0)
		require.NoError(t, err)
	}

	return g
}

// bruteDiameter is the maximum eccentricity over all vertices.
func bruteDiameter(t testing.TB, g *core.Graph) int {
	t.Helper()
	best := 0
	for v := 0; v < g.VertexCount(); v++ {
		res, err := bfs.BFS(g, v)
		require.NoError(t, err)
		if _, d := res.Farthest(); d > best {
			best = d
		}
	}

	return best
}

func TestDiameter_Fixtures(t *testing.T) {
	cases := []struct {
		name     string
		g        *core.Graph
		want     int
		wantPath []int
	}{
		{
			name:     "six vertices",
			g:        fixture(t, 6, [2]int{0, 1}, [2]int{0, 4}, [2]int{1, 2}, [2]int{1, 3}, [2]int{4, 5}),
			want:     4,
			wantPath: []int{2, 1, 0, 4, 5},
		},
		{
			name:     "long arm",
			g:        fixture(t, 6, [2]int{0, 1}, [2]int{0, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{1, 5}),
			want:     5,
			wantPath: []int{4, 3, 2, 0, 1, 5},
		},
		{
			name:     "star of three",
			g:        fixture(t, 3, [2]int{0, 1}, [2]int{0, 2}),
			want:     2,
			wantPath: []int{1, 0, 2},
		},
		{
			name:     "single vertex",
			g:        core.NewGraph(1),
			want:     0,
			wantPath: []int{0},
		},
		{
			name:     "single edge",
			g:        fixture(t, 2, [2]int{1, 0}),
			want:     1,
			wantPath: []int{1, 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := tree.IsTree(tc.g)
			require.NoError(t, err)
			assert.True(t, ok)

			d, err := tree.Diameter(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)

			path, err := tree.DiameterPath(tc.g)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.wantPath, path); diff != "" {
				t.Errorf("DiameterPath mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiameter_PathAndStar(t *testing.T) {
	for _, n := range []int{2, 3, 10, 101} {
		p, err := builder.BuildGraph(nil, nil, builder.Path(n))
		require.NoError(t, err)
		d, err := tree.Diameter(p)
		require.NoError(t, err)
		assert.Equal(t, n-1, d, "path of %d", n)

		s, err := builder.BuildGraph(nil, nil, builder.Star(n))
		require.NoError(t, err)
		d, err = tree.Diameter(s)
		require.NoError(t, err)
		assert.Equal(t, min(n-1, 2), d, "star of %d", n)
	}
}

func TestDiameter_Weighted(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(7)},
		builder.Path(5),
	)
	require.NoError(t, err)

	d, err := tree.Diameter(g)
	require.NoError(t, err)
	assert.Equal(t, 4, d, "weights are ignored")
	require.NoError(t, tree.Validate(g))
}

func TestDiameter_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 50; i++ {
		g := randomRecursiveTree(t, rng, 2+rng.Intn(60))
		require.NoError(t, tree.Validate(g))

		d, err := tree.Diameter(g)
		require.NoError(t, err)
		assert.Equal(t, bruteDiameter(t, g), d)

		path, err := tree.DiameterPath(g)
		require.NoError(t, err)
		assert.Len(t, path, d+1)
		for j := 1; j < len(path); j++ {
			assert.True(t, g.HasEdge(path[j-1], path[j]), "path step %d-%d", path[j-1], path[j])
		}
	}
}

func TestDiameter_Errors(t *testing.T) {
	_, err := tree.Diameter(nil)
	assert.ErrorIs(t, err, tree.ErrGraphNil)
	_, err = tree.Diameter(core.NewGraph(0))
	assert.ErrorIs(t, err, tree.ErrEmptyGraph)
	_, err = tree.DiameterPath(core.NewGraph(0))
	assert.ErrorIs(t, err, tree.ErrEmptyGraph)
}

func TestDiameter_NonTreeDoesNotFail(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	d, err := tree.Diameter(g)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestFarthestVertex(t *testing.T) {
	g := fixture(t, 6, [2]int{0, 1}, [2]int{0, 4}, [2]int{1, 2}, [2]int{1, 3}, [2]int{4, 5})

	v, err := tree.FarthestVertex(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "first discovered vertex at depth 2")

	v, err = tree.FarthestVertex(g, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = tree.FarthestVertex(g, 6)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = tree.FarthestVertex(nil, 0)
	assert.ErrorIs(t, err, tree.ErrGraphNil)
}

func TestFarthestVertex_CyclicGraphs(t *testing.T) {
	// CLRS figure 22.2 relabelled to 0..5.
	g := fixture(t, 6,
		[2]int{0, 1}, [2]int{0, 3}, [2]int{1, 4}, [2]int{2, 4},
		[2]int{2, 5}, [2]int{3, 1}, [2]int{4, 3})

	v, err := tree.FarthestVertex(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = tree.FarthestVertex(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// Vertex 5 is isolated and never reached.
	g = fixture(t, 10,
		[2]int{0, 3}, [2]int{2, 9}, [2]int{3, 2}, [2]int{3, 8}, [2]int{6, 9},
		[2]int{8, 6}, [2]int{3, 1}, [2]int{6, 7}, [2]int{7, 4}, [2]int{4, 1})

	v, err = tree.FarthestVertex(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		g     *core.Graph
		wants []error
	}{
		{"tree", fixture(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}), nil},
		{"empty", core.NewGraph(0), []error{tree.ErrNotTree, tree.ErrEmptyGraph}},
		{"triangle", fixture(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}), []error{tree.ErrNotTree, tree.ErrEdgeCount}},
		{"forest", fixture(t, 4, [2]int{0, 1}, [2]int{2, 3}), []error{tree.ErrNotTree, tree.ErrEdgeCount}},
		{"cycle plus isolated", fixture(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}), []error{tree.ErrNotTree, tree.ErrDisconnected}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tree.Validate(tc.g)
			ok, ierr := tree.IsTree(tc.g)
			require.NoError(t, ierr)
			if tc.wants == nil {
				assert.NoError(t, err)
				assert.True(t, ok)
				return
			}
			assert.False(t, ok)
			for _, want := range tc.wants {
				assert.ErrorIs(t, err, want)
			}
		})
	}

	assert.ErrorIs(t, tree.Validate(nil), tree.ErrGraphNil)
	_, err := tree.IsTree(nil)
	assert.ErrorIs(t, err, tree.ErrGraphNil)
}

func TestValidate_ReportsCycle(t *testing.T) {
	g := fixture(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	err := tree.Validate(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle [0 1 2]")
	assert.Contains(t, err.Error(), "3 of 4 vertices")
}
