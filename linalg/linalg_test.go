// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/linalg"
	"github.com/katalvlaran/polygraph/matrix"
)

// path3 is the adjacency of the path a-b-c; eigenvalues are -√2, 0, √2.
func path3(t *testing.T) *matrix.Dense[float64] {
	t.Helper()
	a, err := matrix.FromInt64Rows(matrix.Float64, [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)

	return a
}

func TestEigenSym_PathSpectrum(t *testing.T) {
	t.Parallel()
	e, err := linalg.EigenSym(path3(t))
	require.NoError(t, err)
	require.Len(t, e.Values, 3)
	assert.InDelta(t, -math.Sqrt2, e.Values[0], 1e-12)
	assert.InDelta(t, 0, e.Values[1], 1e-12)
	assert.InDelta(t, math.Sqrt2, e.Values[2], 1e-12)
}

func TestJacobi_AgreesWithGonum(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromInt64Rows(matrix.Float64, [][]int64{
		{0, 1, 1, 1}, {1, 0, 1, 0}, {1, 1, 0, 0}, {1, 0, 0, 0},
	})
	require.NoError(t, err)
	g, err := linalg.EigenSym(a)
	require.NoError(t, err)
	j, err := linalg.Jacobi(a, 1e-12, 1000)
	require.NoError(t, err)
	assert.InDeltaSlice(t, g.Values, j.Values, 1e-9)

	// A·v = λ·v for each Jacobi pair.
	for k, lambda := range j.Values {
		v := j.Vectors.Col(k)
		for i := 0; i < 4; i++ {
			var av float64
			for c, x := range a.Row(i) {
				av += x * v[c]
			}
			assert.InDelta(t, lambda*v[i], av, 1e-9)
		}
	}
}

func TestEigenSym_RejectsAsymmetric(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromInt64Rows(matrix.Float64, [][]int64{{0, 1}, {0, 0}})
	require.NoError(t, err)
	_, err = linalg.EigenSym(a)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestCountDistinct(t *testing.T) {
	t.Parallel()
	vals := []float64{-1, -1 + 1e-13, 0, math.Copysign(0, -1), 2}
	assert.Equal(t, 3, linalg.CountDistinct(vals, 10))
	assert.Equal(t, 4, linalg.CountDistinct(vals, 14))
}

func TestExpm_MatchesAdhoc(t *testing.T) {
	t.Parallel()
	a := path3(t)
	pade, err := linalg.Expm(a)
	require.NoError(t, err)
	spec, err := linalg.AdhocExpm(a)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDeltaSlice(t, pade.Row(i), spec.Row(i), 1e-9)
	}

	// diag(expm(P3)) at the end vertex is (cosh √2 + 1)/2.
	d, err := linalg.DiagExpm(a, zerolog.Nop())
	require.NoError(t, err)
	assert.InDelta(t, (math.Cosh(math.Sqrt2)+1)/2, d[0], 1e-9)
	assert.InDelta(t, d[0], d[2], 1e-12)
}

func TestExpm_Empty(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDense(matrix.Float64, 0, 0)
	require.NoError(t, err)
	e, err := linalg.Expm(a)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Rows())

	_, err = linalg.Expm(matrix.ToFloat64(mustRect(t)))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestExpm_NonFinite(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromRows(matrix.Float64, [][]float64{{1e6, 0}, {0, 0}})
	require.NoError(t, err)
	_, err = linalg.Expm(a)
	require.ErrorIs(t, err, linalg.ErrExpmFailed)
}

func mustRect(t *testing.T) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense(matrix.Float64, 2, 3)
	require.NoError(t, err)

	return m
}
