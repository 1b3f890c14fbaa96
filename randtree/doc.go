// Package randtree draws random spanning trees of the complete graph K_n.
//
// Two generators are provided, both returning an unweighted *core.Graph on
// vertices 0..n-1 with exactly n-1 edges:
//
//   - RandomWalk: start at vertex 0 and jump to a uniformly random vertex at
//     every step (the current vertex included). The first time a vertex is
//     entered, the edge it was entered through joins the tree. This is the
//     Aldous–Broder walk on K_n, so the tree is uniform over all n^(n-2)
//     labelled trees. Expected steps: about n·H(n) (coupon collector).
//
//   - Kruskal: weight every edge of K_n with an independent U[0,1) draw and
//     keep the minimum spanning tree (prim_kruskal.Kruskal). The tree is a
//     random MST, whose diameter grows like n^(1/3) rather than the n^(1/2)
//     of a uniform tree.
//
// Both generators consume only the supplied *rand.Rand, so a seeded source
// reproduces the same tree. A *rand.Rand is not safe for concurrent use;
// give each goroutine its own.
//
// Lookup maps the method names used by the experiment CLI to generators.
package randtree
