// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// Walk classes are computed per graph regardless of connectivity, so the
// CLI uses Components to report how many pieces a generated family has.
//
// Determinism
//
//	core.Graph.Neighbors lists neighbors in vertex insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity
//
//	O(V + E) time and O(V) memory per search.
package bfs
