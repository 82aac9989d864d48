// SPDX-License-Identifier: MIT
// Package: linalg
//
// eigen.go — symmetric eigendecomposition and distinct-eigenvalue counting.
package linalg

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polygraph/matrix"
)

const (
	opEigen  = "EigenSym"
	opJacobi = "Jacobi"
	opExpm   = "Expm"
	opAdhoc  = "AdhocExpm"

	// Jacobi fallback parameters, sized for small adjacency matrices.
	jacobiTol     = 1e-12
	jacobiMaxIter = 10000
)

// Eigen is a symmetric eigendecomposition A = V·diag(Values)·Vᵀ.
type Eigen struct {
	// Values are ascending.
	Values []float64
	// Vectors holds the unit eigenvector for Values[i] in column i.
	Vectors *matrix.Dense[float64]
}

// EigenSym decomposes a symmetric matrix with gonum's EigenSym, falling back
// to Jacobi rotations when gonum reports failure.
//
// Errors:
//   - matrix.ErrNonSquare / matrix.ErrAsymmetry for invalid input.
//   - ErrEigenFailed if both routines fail.
func EigenSym(a *matrix.Dense[float64]) (*Eigen, error) {
	if err := matrix.ValidateSymmetric(a); err != nil {
		return nil, linalgErrorf(opEigen, err)
	}
	n := a.Rows()
	if n == 0 {
		vecs, _ := matrix.NewDense(matrix.Float64, 0, 0)
		return &Eigen{Values: []float64{}, Vectors: vecs}, nil
	}
	sym, err := matrix.ToSymDense(a)
	if err != nil {
		return nil, linalgErrorf(opEigen, err)
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return Jacobi(a, jacobiTol, jacobiMaxIter)
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	raw := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw[i*n+j] = vecs.At(i, j)
		}
	}

	return sortedEigen(values, raw, n)
}

// Eigenvalues returns only the ascending eigenvalues of a symmetric matrix.
func Eigenvalues(a *matrix.Dense[float64]) ([]float64, error) {
	e, err := EigenSym(a)
	if err != nil {
		return nil, err
	}

	return e.Values, nil
}

// CountDistinct counts the distinct values after rounding each to decimals
// places (half to even). Rounding merges eigenvalues that differ only by
// floating-point noise.
func CountDistinct(values []float64, decimals int) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[scalar.RoundEven(v, decimals)] = struct{}{}
	}

	return len(seen)
}

// sortedEigen orders eigenpairs by ascending value; raw holds vectors
// column-wise in an n×n row-major slice.
func sortedEigen(values []float64, raw []float64, n int) (*Eigen, error) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return values[order[x]] < values[order[y]] })

	vecs, err := matrix.NewDense(matrix.Float64, n, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for k, src := range order {
		out[k] = values[src]
		for i := 0; i < n; i++ {
			vecs.Row(i)[k] = raw[i*n+src]
		}
	}

	return &Eigen{Values: out, Vectors: vecs}, nil
}
