// SPDX-License-Identifier: MIT
// Package: linalg
//
// expm.go — matrix exponential of symmetric matrices.
//
// Expm uses gonum's scaling-and-squaring Padé approximant. AdhocExpm uses
// the spectral identity expm(A) = V·diag(exp λ)·Vᵀ, valid for symmetric A.
// ExpmWithFallback tries the first and, on failure, logs and uses the second.
package linalg

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polygraph/matrix"
)

// Expm computes expm(a) with gonum's Padé approximant.
//
// Errors:
//   - matrix.ErrNonSquare for non-square input.
//   - ErrExpmFailed if gonum panics or the result is not finite.
func Expm(a *matrix.Dense[float64]) (out *matrix.Dense[float64], err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, linalgErrorf(opExpm, err)
	}
	if a.Rows() == 0 {
		return a.Clone(), nil
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, linalgErrorf(opExpm, fmt.Errorf("%v: %w", r, ErrExpmFailed))
		}
	}()

	var e mat.Dense
	e.Exp(matrix.ToGonum(a))
	out = matrix.FromGonum(&e)
	if !finite(out) {
		return nil, linalgErrorf(opExpm, ErrExpmFailed)
	}

	return out, nil
}

// AdhocExpm computes expm(a) = V·diag(exp λ)·Vᵀ for symmetric a.
func AdhocExpm(a *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	eig, err := EigenSym(a)
	if err != nil {
		return nil, linalgErrorf(opAdhoc, err)
	}
	n := a.Rows()
	out, err := matrix.NewDense(matrix.Float64, n, n)
	if err != nil {
		return nil, linalgErrorf(opAdhoc, err)
	}
	expVals := make([]float64, n)
	for k, v := range eig.Values {
		expVals[k] = math.Exp(v)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		vi := eig.Vectors.Row(i)
		dst := out.Row(i)
		for j = 0; j < n; j++ {
			vj := eig.Vectors.Row(j)
			var sum float64
			for k = 0; k < n; k++ {
				sum += vi[k] * expVals[k] * vj[k]
			}
			dst[j] = sum
		}
	}

	return out, nil
}

// padeExpm is the primary path of ExpmWithFallback.
var padeExpm = Expm

// ExpmWithFallback returns Expm(a), or AdhocExpm(a) after a warning when the
// Padé path fails.
func ExpmWithFallback(a *matrix.Dense[float64], logger zerolog.Logger) (*matrix.Dense[float64], error) {
	out, err := padeExpm(a)
	if err == nil {
		return out, nil
	}
	logger.Warn().Err(err).Msg("Error in expm; using eigendecomposition fallback")

	return AdhocExpm(a)
}

// DiagExpm returns diag(expm(a)) using ExpmWithFallback.
func DiagExpm(a *matrix.Dense[float64], logger zerolog.Logger) ([]float64, error) {
	e, err := ExpmWithFallback(a, logger)
	if err != nil {
		return nil, err
	}

	return e.Diag()
}

func finite(m *matrix.Dense[float64]) bool {
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.Row(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
