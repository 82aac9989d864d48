// SPDX-License-Identifier: MIT
// Package: polygraph
//
// powers.go — closed-walk counts per vertex for walk lengths 2..p.
package polygraph

import (
	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/polygraph/matrix"
)

// DiagonalMatrix returns the n×(p-1) walk matrix W of adjacency a, where
// column k holds diag(a^(k+2)): W[i,k] is the number of closed walks of
// length k+2 starting at vertex i.
//
// Implementation:
//   - Stage 1: Validate a is square and maxPower ≥ 2.
//   - Stage 2: Keep a running product M (starting at a); for k = 2..p set
//     M ← M·a and store diag(M) as column k-2. Every intermediate diagonal
//     is needed, so powers are accumulated instead of computed directly.
//   - Stage 3: With useSparse=true and a float64 ring, a and M live in
//     sparse.CSR and the products run through its CSR·CSR kernel. Exact
//     rings ignore useSparse.
//
// The element type follows a's ring: Dense[float64] is fast and inexact for
// long walks on dense graphs; Dense[*big.Int] is exact.
//
// Errors:
//   - matrix.ErrNonSquare if a is not square.
//   - ErrPowerTooSmall if maxPower < 2.
//
// Complexity:
//   - Dense: Time O(p·n³); sparse: Time O(p·n·nnz(a)). Space O(n² + n·p).
func DiagonalMatrix[T any](a *matrix.Dense[T], maxPower int, useSparse bool) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, polygraphErrorf(opDiagonal, err)
	}
	if maxPower < 2 {
		return nil, polygraphErrorf(opDiagonal, ErrPowerTooSmall)
	}

	n := a.Rows()
	w, err := matrix.NewDense(a.Ring(), n, maxPower-1)
	if err != nil {
		return nil, polygraphErrorf(opDiagonal, err)
	}
	if fa, ok := any(a).(*matrix.Dense[float64]); ok && useSparse && n > 0 {
		if err = sparseDiagonals(fa, any(w).(*matrix.Dense[float64]), maxPower); err != nil {
			return nil, polygraphErrorf(opDiagonal, err)
		}
		return w, nil
	}

	m := a
	for k := 2; k <= maxPower; k++ {
		if m, err = m.Mul(a); err != nil {
			return nil, polygraphErrorf(opDiagonal, err)
		}
		d, err := m.Diag()
		if err != nil {
			return nil, polygraphErrorf(opDiagonal, err)
		}
		if err = w.SetCol(k-2, d); err != nil {
			return nil, polygraphErrorf(opDiagonal, err)
		}
	}

	return w, nil
}

// sparseDiagonals fills w column by column from powers of a held in CSR.
func sparseDiagonals(a, w *matrix.Dense[float64], maxPower int) error {
	adj, err := matrix.ToCSR(a)
	if err != nil {
		return err
	}
	m := adj
	for k := 2; k <= maxPower; k++ {
		next := &sparse.CSR{}
		next.Mul(m, adj)
		m = next
		d, err := matrix.DiagOf(m)
		if err != nil {
			return err
		}
		if err = w.SetCol(k-2, d); err != nil {
			return err
		}
	}

	return nil
}

// walkLengths returns [2, 3, ..., maxPower], the walk length of each W column.
func walkLengths(maxPower int) []int {
	out := make([]int, 0, maxPower-1)
	for p := 2; p <= maxPower; p++ {
		out = append(out, p)
	}

	return out
}
