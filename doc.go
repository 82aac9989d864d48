// Package polygraph is an in-memory toolkit for walk-class analysis: it
// groups the vertices of a graph by their closed-walk counts and asks
// whether a spectral function can make structurally different vertices
// look identical on the diagonal.
//
// 🚀 What is inside?
//
//	• Core primitives: thread-safe undirected graph with vertex categories
//	• Matrix layer: generic dense matrices over float64 and *big.Int, sparse
//	  walk products through james-bowman/sparse, row grouping
//	• Linear algebra: symmetric eigenvalues, matrix exponential with a
//	  scaling-and-squaring fallback
//	• Builders: cycles, paths, stars, wheels, spiders, spider tori,
//	  pyramid prisms, orthobicupolae, snowflake cycles, hypercubes,
//	  Cartesian products, random graphs
//	• Analysis: walk classes, flip-flop conditions, minimal column subsets,
//	  positive and nonnegative linear feasibility checks, deceptive functions
//
// Layout:
//
//	core/      — Graph, Vertex, Edge and the locking discipline
//	matrix/    — Ring, Dense, sparse bridge, adjacency export, row grouping
//	linalg/    — eigenvalues, expm, distinct-value counting
//	builder/   — graph families as composable Constructors
//	bfs/       — breadth-first search and connected components
//	polygraph/ — the analysis pipeline and its Config
//	cmd/       — the polygraph command line
//
// Quick ASCII example:
//
//	    0───1───2
//
// is a path whose endpoints share a walk class: both see 1 closed walk of
// length 2 and 0 of length 3, while the middle vertex sees 2 and 0.
//
//	go install github.com/katalvlaran/polygraph/cmd/polygraph@latest
//	polygraph classes path 3
package polygraph
