// Package builder provides deterministic generators for test and benchmark
// graphs, and synthesis of complete two-agent instances on top of them.
//
// The package offers the following key components:
//
//   - Canvas and Constructor: constructors allocate vertex ranges on a Canvas
//     and emit edges inside them; BuildGraph materialises the disjoint union
//     of all constructors as one core.Graph.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, RandomRegular.
//   - Options: WithSeed / WithRand for the stochastic constructors, WithRelabel
//     to scatter vertex indices with a seeded permutation.
//   - Instances: RandomInstance picks starts and targets whose pairs satisfy
//     the safety threshold and wraps everything as an instance.Instance.
//
// Guarantees:
//
//   - Determinism: same constructors, order and seed ⇒ identical graphs.
//   - Constructors validate parameters and return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed); they never panic. Option constructors panic on
//     nil arguments.
//
// Usage
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Grid(4, 4),
//	    builder.RandomSparse(10, 0.2),
//	)
package builder
