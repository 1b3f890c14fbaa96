package dsu

// DisjointSet is a union–find forest with path compression and union by rank.
// The zero value is an empty set family; use Add or New to create elements.
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	sets   int
}

// New returns a DisjointSet of n singleton sets {0}, {1}, ..., {n-1}.
// A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Add appends a new singleton set and returns its element.
// Complexity: O(1) amortized.
func (d *DisjointSet) Add() int {
	x := len(d.parent)
	d.parent = append(d.parent, x)
	d.rank = append(d.rank, 0)
	d.size = append(d.size, 1)
	d.sets++

	return x
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the representative of the set containing x.
// Iterative two-pass path compression: locate the root, then point every
// vertex on the walked path directly at it.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y. It returns false when x and y
// were already in the same set.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// attach the shallower tree under the deeper one
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y share a set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in x's set.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}
