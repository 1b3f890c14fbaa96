// Package experiment measures how the diameter of random spanning trees
// grows with the number of vertices.
//
// For every size n in Config.Sizes the Runner draws Config.Trials trees with
// the configured randtree generator, validates each one with tree.Validate,
// measures it with tree.Diameter and aggregates the diameters into a Result
// (mean, standard deviation, extremes).
//
// Trials run in parallel on an errgroup bounded by Config.Workers. Each trial
// seeds its own *rand.Rand from (Seed, n, trial), so the numbers do not depend
// on the worker count or on scheduling.
//
// Results are dumped as plain text, one "<size> <mean>" line per size, the
// format plotting scripts for this experiment read:
//
//	250 28.350000
//	500 40.120000
//
// Configuration comes from DefaultConfig, optionally overlaid with a YAML
// file (LoadConfig):
//
//	method: kruskal
//	sizes: [250, 500, 750, 1000]
//	trials: 100
//	seed: 42
//	workers: 8
//	output: kruskal.txt
package experiment
