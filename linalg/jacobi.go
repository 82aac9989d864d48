// SPDX-License-Identifier: MIT
// Package: linalg
//
// jacobi.go — classical Jacobi rotations for symmetric matrices. Used when
// gonum's EigenSym reports failure, so a spectral answer is still available
// for small adjacency matrices.
package linalg

import (
	"math"

	"github.com/katalvlaran/polygraph/matrix"
)

// Jacobi computes eigenvalues and eigenvectors of a symmetric matrix.
//
// Implementation:
//   - Stage 1: Validate symmetric square input.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a Jacobi rotation, accumulating it into Q.
//   - Stage 3: Fail with ErrEigenFailed if the largest off-diagonal entry is
//     still ≥ tol after maxIter rotations.
//
// Returns eigenvalues ascending with matching eigenvector columns.
//
// Complexity: Time O(maxIter * n²), Space O(n²).
func Jacobi(m *matrix.Dense[float64], tol float64, maxIter int) (*Eigen, error) {
	if err := matrix.ValidateSymmetric(m); err != nil {
		return nil, linalgErrorf(opJacobi, err)
	}
	n := m.Rows()
	a := make([]float64, n*n)
	q := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		copy(a[i*n:(i+1)*n], m.Row(i))
		q[i*n+i] = 1
	}

	var (
		iter           int
		p, r           int     // pivot indices
		maxOff, off    float64 // largest |A[p,r]| and scan temporary
		app, arr, apr  float64
		aip, air       float64
		newIP, newIR   float64
		theta, t, c, s float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, arr, apr = a[p*n+p], a[r*n+r], a[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a[i*n+p], a[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a[i*n+p], a[p*n+i] = newIP, newIP
			a[i*n+r], a[r*n+i] = newIR, newIR
		}
		a[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p*n+r], a[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qir := q[i*n+p], q[i*n+r]
			q[i*n+p] = c*qip - s*qir
			q[i*n+r] = s*qip + c*qir
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]) >= tol {
				return nil, linalgErrorf(opJacobi, ErrEigenFailed)
			}
		}
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a[i*n+i]
	}

	return sortedEigen(values, q, n)
}
