// SPDX-License-Identifier: MIT
// Package: polygraph
//
// deceptive.go — the spectral function certified by a nonnegative check.
//
// A solution x of the nonnegative system defines
//
//	g(λ) = e^λ + Σ_k x_k · λ^{p_k}
//
// whose matrix function g(A) has the same diagonal at every class
// representative. Evaluating g on the spectrum of A tells whether g(A) is
// positive semidefinite (min over eigenvalues ≥ 0).
package polygraph

import (
	"math"
	"slices"

	"github.com/katalvlaran/polygraph/linalg"
	"github.com/katalvlaran/polygraph/matrix"
)

// DeceptiveFunction is g(λ) = e^λ + Σ Coefficients[k]·λ^Powers[k].
type DeceptiveFunction struct {
	Coefficients []float64 `yaml:"coefficients" json:"coefficients"`
	Powers       []int     `yaml:"powers" json:"powers"`
}

// NewDeceptiveFunction builds g from a successful nonnegative check.
func NewDeceptiveFunction(res *NonnegativeResult) (*DeceptiveFunction, error) {
	if res == nil || !res.Success {
		return nil, polygraphErrorf(opDeceptive, ErrNotSolved)
	}

	return &DeceptiveFunction{
		Coefficients: slices.Clone(res.Coefficients()),
		Powers:       slices.Clone(res.Powers),
	}, nil
}

// Eval returns g(lambda).
func (d *DeceptiveFunction) Eval(lambda float64) float64 {
	v := math.Exp(lambda)
	for k, x := range d.Coefficients {
		v += x * math.Pow(lambda, float64(d.Powers[k]))
	}

	return v
}

// MinOver returns the smallest g(λ) over values and the λ attaining it.
// It returns (+Inf, NaN) for no values.
func (d *DeceptiveFunction) MinOver(values []float64) (minValue, argmin float64) {
	minValue, argmin = math.Inf(1), math.NaN()
	for _, lambda := range values {
		if v := d.Eval(lambda); v < minValue {
			minValue, argmin = v, lambda
		}
	}

	return minValue, argmin
}

// MinOverEigenvalues evaluates MinOver on the spectrum of adjacency a.
func MinOverEigenvalues[T any](d *DeceptiveFunction, a *matrix.Dense[T]) (minValue, argmin float64, err error) {
	values, err := linalg.Eigenvalues(matrix.ToFloat64(a))
	if err != nil {
		return 0, 0, polygraphErrorf(opDeceptive, err)
	}
	minValue, argmin = d.MinOver(values)

	return minValue, argmin, nil
}
