// Package dsu provides a disjoint-set (union–find) structure over the dense
// integer elements 0..n-1.
//
// What
//
//   - Find(x) returns the representative of x's set, compressing the path it walks.
//   - Union(x, y) merges two sets by rank and reports whether a merge happened.
//   - Sets() tracks the number of disjoint sets; Size(x) the size of x's set.
//
// Why
//
//   - Kruskal's MST keeps the growing forest in a DisjointSet and skips every
//     edge whose endpoints already share a representative.
//   - Connectivity checks over edge lists without materializing a graph.
//
// Complexity
//
//   - Find / Union / Connected: O(α(n)) amortized (inverse Ackermann)
//   - Memory: O(n)
//
// Contract
//
//	Elements are indices, like slice indices: passing an element outside
//	0..Len()-1 panics with an index-out-of-range runtime error.
package dsu
