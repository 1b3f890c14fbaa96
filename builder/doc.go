// Package builder provides "functional-options"-style graph constructors for
// spantree fixtures and experiments.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, then every Constructor in order.
//     – Apply(g, bopts, cons...): the same against an existing graph.
//   - Constructors (each appends its own vertices, so composition is a disjoint union):
//     – Path(n), Star(n), Cycle(n), Complete(n)
//     – Edges(n, pairs): explicit edge-list fixture
//     – RandomSparse(n, p): Erdős–Rényi G(n,p)
//   - Options:
//     – WithSeed, WithRand: RNG for stochastic constructors and weights.
//     – WithWeightFn, WithUniformWeight, WithConstantWeight: edge weights
//       (observed only when the graph is created with core.WithWeighted()).
//   - Weight functions: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Deterministic: same constructors, options and seed give the same graph,
//     including edge IDs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRNG).
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 1)},
//		builder.Complete(100),
//	)
package builder
