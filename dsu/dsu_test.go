package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New(5)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Sets())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
		assert.Equal(t, 1, d.Size(i))
	}

	assert.Equal(t, 0, dsu.New(-1).Len())

	var zero dsu.DisjointSet
	assert.Equal(t, 0, zero.Sets())
	assert.Equal(t, 0, zero.Add())
	assert.Equal(t, 1, zero.Sets())
}

func TestUnion(t *testing.T) {
	d := dsu.New(6)

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Union(1, 3))
	assert.False(t, d.Union(0, 2), "0 and 2 already joined through 1-3")
	assert.False(t, d.Union(4, 4))

	assert.Equal(t, 3, d.Sets())
	assert.True(t, d.Connected(0, 3))
	assert.False(t, d.Connected(0, 4))
	assert.Equal(t, 4, d.Size(2))
	assert.Equal(t, 1, d.Size(5))

	x := d.Add()
	assert.Equal(t, 6, x)
	assert.Equal(t, 4, d.Sets())
	assert.True(t, d.Union(x, 5))
	assert.Equal(t, 2, d.Size(x))
}

func TestFind_OutOfRangePanics(t *testing.T) {
	d := dsu.New(2)
	assert.Panics(t, func() { d.Find(2) })
}

// TestUnion_MatchesNaiveLabels cross-checks against a relabelling partition.
func TestUnion_MatchesNaiveLabels(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	d := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 3*n; step++ {
		x, y := r.Intn(n), r.Intn(n)
		merged := d.Union(x, y)
		require.Equal(t, label[x] != label[y], merged, "step %d union(%d,%d)", step, x, y)
		if merged {
			old := label[y]
			for i := range label {
				if label[i] == old {
					label[i] = label[x]
				}
			}
		}
	}

	distinct := map[int]bool{}
	for i := 0; i < n; i++ {
		distinct[label[i]] = true
		for j := i + 1; j < n; j += 17 {
			assert.Equal(t, label[i] == label[j], d.Connected(i, j))
		}
	}
	assert.Equal(t, len(distinct), d.Sets())
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 16
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}
