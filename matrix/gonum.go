// SPDX-License-Identifier: MIT
// Package: matrix
//
// gonum.go — bridge between Dense[float64] and gonum/mat.
//
// Notes:
//   - gonum rejects zero-length dimensions with a panic, so empty shapes are
//     handled here before any gonum constructor is called.
//   - Conversions copy; Dense never aliases gonum storage.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// mulFloat computes a·b with gonum's BLAS-backed Mul.
func mulFloat(a, b *Dense[float64]) *Dense[float64] {
	out := &Dense[float64]{r: a.r, c: b.c, data: make([]float64, a.r*b.c), ring: Float64}
	if a.r == 0 || a.c == 0 || b.c == 0 {
		return out
	}
	var prod mat.Dense
	prod.Mul(ToGonum(a), ToGonum(b))
	raw := prod.RawMatrix()
	for i := 0; i < out.r; i++ {
		copy(out.data[i*out.c:(i+1)*out.c], raw.Data[i*raw.Stride:i*raw.Stride+out.c])
	}

	return out
}

// ToGonum copies m into a *mat.Dense. m must be non-empty.
func ToGonum(m *Dense[float64]) *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into a Dense[float64].
func FromGonum(a mat.Matrix) *Dense[float64] {
	r, c := a.Dims()
	out := &Dense[float64]{r: r, c: c, data: make([]float64, r*c), ring: Float64}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = a.At(i, j)
		}
	}

	return out
}

// ToSymDense copies a square, exactly symmetric, non-empty matrix into a
// *mat.SymDense for gonum's symmetric routines.
func ToSymDense(m *Dense[float64]) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m); err != nil {
		return nil, matrixErrorf(opGonum, err)
	}
	if m.r == 0 {
		return nil, matrixErrorf(opGonum, ErrBadShape)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewSymDense(m.r, data), nil
}
