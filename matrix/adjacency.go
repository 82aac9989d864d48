// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go — adjacency matrix of a core.Graph.
//
// Contract:
//   - Row/column i corresponds to g.Vertices()[i] (insertion order).
//   - A[i,j] is the summed weight of all edges joining i and j; a self-loop
//     contributes its weight once to A[i,i].
//   - The result is symmetric and nonnegative.
package matrix

import (
	"github.com/katalvlaran/polygraph/core"
)

// Adjacency builds the n×n adjacency matrix of g over ring and returns the
// vertex IDs indexing its rows.
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: Time O(V² + E), Space O(V²).
func Adjacency[T any](g *core.Graph, ring Ring[T]) (*Dense[T], []string, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}
	ids := g.Vertices()
	idx := g.VertexIndex()
	n := len(ids)
	a, err := NewDense(ring, n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opAdjacency, err)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		w := ring.FromInt64(e.Weight)
		a.data[i*n+j] = ring.Add(a.data[i*n+j], w)
		if i != j {
			a.data[j*n+i] = ring.Add(a.data[j*n+i], w)
		}
	}

	return a, ids, nil
}
