// Package spantree is a small laboratory for random spanning trees: how long
// is the longest path of a random tree on n vertices, and how does that depend
// on the way the tree was drawn?
//
// What is inside?
//
//	A thread-safe graph core plus the handful of algorithms the experiment needs:
//		• Core primitives: integer vertices 0..n-1, undirected edges, adjacency lists
//		• Traversals: BFS with depth labelling, DFS with cycle finding
//		• Union–find and minimum spanning trees: Kruskal, Prim
//		• Tree checks and double-BFS diameter
//		• Random spanning trees: random walk (uniform) and Kruskal on random weights
//		• An experiment runner that averages diameters over many trials
//
// Layout:
//
//	core/         - Graph, Edge and the thread-safe primitives
//	bfs/, dfs/    - traversals and undirected cycle finding
//	dsu/          - disjoint-set union with path compression and union by rank
//	prim_kruskal/ - minimum spanning trees
//	builder/      - deterministic graph constructors (Path, Star, Cycle, Complete, ...)
//	tree/         - Validate, IsTree, FarthestVertex, Diameter
//	randtree/     - RandomWalk and Kruskal tree generators
//	experiment/   - YAML config, parallel runner, result files
//	cmd/spantree  - the command-line front end
//
// Quick ASCII example:
//
//	    0───1───2
//	        │
//	        3───4
//
//	is a tree on five vertices; its diameter is 3 (0-1-3-4).
//
// Run the classic experiment (sizes 250..2000, 100 trials each):
//
//	go run ./cmd/spantree run --method random-walk
//	go run ./cmd/spantree run --method kruskal
package spantree
