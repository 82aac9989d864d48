// SPDX-License-Identifier: MIT
// Package core provides the thread-safe, undirected in-memory Graph that
// feeds the walk-class engine.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[u][v][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Ordering contract:
//
//	Vertices() returns IDs in insertion order. Every matrix derived from a
//	graph (adjacency, walk matrix, class labels) indexes rows in that order,
//	so building the same graph twice yields identical analyses.
//
// Annotation:
//
//	The only mutation the analysis performs on an input graph is writing
//	each vertex's walk-class label through SetCategory. Category returns
//	(label, true) once annotated and (NoCategory, false) before.
//
// Core Methods:
//
//	AddVertex(id) error                       // O(1)
//	RemoveVertex(id) error                    // O(V+E)
//	AddEdge(from, to, weight) (eid, error)    // O(1)
//	RemoveEdge(eid) error                     // O(1)
//	Vertices() []string                       // insertion order
//	Neighbors(id) ([]string, error)           // insertion order
//	Weight(from, to) int64                    // adjacency entry
//	Degree(id) (int, error), DegreeSequence(), MaxDegree()
//	SetCategory(id, label) error, Category(id), Categories()
//	Clone(), CloneEmpty(), Clear()
package core
