// SPDX-License-Identifier: MIT
// Package: matrix
//
// sparse.go — bridge between Dense[float64] and james-bowman/sparse.
//
// Adjacency matrices of the generated families are mostly zeros, so the
// fast path hands them to sparse.CSR and lets its CSR·CSR product do the
// repeated multiplications.
package matrix

import (
	"github.com/james-bowman/sparse"
)

// ToCSR compresses m into a *sparse.CSR, dropping zero entries.
//
// Complexity: Time O(r*c), Space O(nnz).
func ToCSR(m *Dense[float64]) (*sparse.CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSparse, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opSparse, ErrBadShape)
	}
	dok := sparse.NewDOK(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if v != 0 {
				dok.Set(i, j, v)
			}
		}
	}

	return dok.ToCSR(), nil
}

// DiagOf returns the main diagonal of a square sparse matrix.
func DiagOf(s *sparse.CSR) ([]float64, error) {
	r, c := s.Dims()
	if r != c {
		return nil, matrixErrorf(opSparse, ErrNonSquare)
	}
	out := make([]float64, r)
	for i := range out {
		out[i] = s.At(i, i)
	}

	return out, nil
}
