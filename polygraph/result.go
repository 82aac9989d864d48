// SPDX-License-Identifier: MIT
package polygraph

import (
	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/matrix"
)

// Result is the outcome of walk-class partitioning.
//
// All fields are always populated except EigMatrix, which is nil for
// composite (representative-based) results; use Reduced to get the matrix
// downstream checks should consume.
type Result[T any] struct {
	// NumClasses is the number of distinct walk classes.
	NumClasses int
	// Classes[label] lists the member vertex IDs in vertex order.
	Classes [][]string
	// Labels[i] is the class of the i-th vertex (insertion order).
	Labels []int
	// Vertices are the vertex IDs indexing the rows of DiagMatrix.
	Vertices []string

	// Adjacency is the adjacency matrix the walks were counted on.
	Adjacency *matrix.Dense[T]
	// DiagMatrix is W: column k holds diag(A^Powers[k]).
	DiagMatrix *matrix.Dense[T]
	// Powers[k] is the walk length of column k.
	Powers []int

	// UniqRows are the W row indices of each class representative, by label.
	UniqRows []int
	// UniqMatrix holds the W rows at UniqRows.
	UniqMatrix *matrix.Dense[T]
	// EigMatrix is UniqMatrix restricted to its first NumEigenvalues columns.
	EigMatrix *matrix.Dense[T]
	// NumEigenvalues is the number of distinct adjacency eigenvalues.
	NumEigenvalues int

	// Graph is the input graph, now annotated with class labels.
	Graph *core.Graph
	// MaxPower is the walk-length bound used.
	MaxPower int
	// FullRange reports whether MaxPower reached the vertex count.
	FullRange bool
	// Exact reports whether counts were computed in exact arithmetic.
	Exact bool
}

// Reduced returns EigMatrix when present, otherwise UniqMatrix.
func (r *Result[T]) Reduced() *matrix.Dense[T] {
	if r.EigMatrix != nil {
		return r.EigMatrix
	}

	return r.UniqMatrix
}

// ReducedPowers returns the walk lengths of the columns of Reduced.
func (r *Result[T]) ReducedPowers() []int {
	return r.Powers[:r.Reduced().Cols()]
}

// ClassSizes returns the member count of every class, by label.
func (r *Result[T]) ClassSizes() []int {
	out := make([]int, len(r.Classes))
	for i, members := range r.Classes {
		out[i] = len(members)
	}

	return out
}
