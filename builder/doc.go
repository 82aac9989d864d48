// SPDX-License-Identifier: MIT
// Package builder provides deterministic graph generators for walk-class
// analysis, in the functional-options style.
//
// Building blocks:
//
//   - Constructor: func(g, cfg) error that adds vertices and edges to g.
//     BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies
//     constructors in order.
//   - BuilderOption: WithIDScheme, WithRand, WithSeed, WithWeightFn.
//   - IDFn: DefaultIDFn ("0","1",…), PrefixIDFn, HexIDFn.
//   - WeightFn: DefaultWeightFn, ConstantWeightFn, UniformWeightFn. Weights
//     apply only to graphs created core.WithWeighted().
//
// Families:
//
//   - Path, Cycle, Complete, Star, Wheel: classic small graphs.
//   - RandomSparse: G(n, p) with a seeded RNG.
//   - Spider: a center with degree arms of equal length.
//   - PyramidPrism, Orthobicupola, SnowflakeCycle: layered polyhedral
//     families with few walk classes.
//   - Hypercube: the dim-cube Q_dim on 2^dim vertices.
//   - CartesianProduct: g □ h of two built graphs, vertex (u, v) at
//     index u·|h| + v.
//   - SpiderTorus: rings of spider copies, returned as a Composite carrying
//     one representative vertex index per walk class.
//
// Guarantees:
//
//   - Vertices are inserted in index order 0..n-1 before any edge, so the
//     index used by a generator is the row of that vertex in the adjacency
//     matrix.
//   - Same parameters, options and seed ⇒ identical graphs.
//   - Invalid parameters return wrapped sentinels (ErrTooFewVertices,
//     ErrInvalidParameter, ErrInvalidProbability, ErrNeedRandSource);
//     constructors never panic.
package builder
