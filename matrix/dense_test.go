// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(matrix.Float64, -1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(matrix.Float64, 0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 3, c)

	_, err = matrix.FromRows(matrix.Float64, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(matrix.BigInt, 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, big.NewInt(7)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int64())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, big.NewInt(1)), matrix.ErrOutOfRange)
}

func TestDense_MulBothRings(t *testing.T) {
	t.Parallel()
	rows := [][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}
	want := [][]int64{{1, 0, 1}, {0, 2, 0}, {1, 0, 1}}

	f, err := matrix.FromInt64Rows(matrix.Float64, rows)
	require.NoError(t, err)
	f2, err := f.Mul(f)
	require.NoError(t, err)
	fw, err := matrix.FromInt64Rows(matrix.Float64, want)
	require.NoError(t, err)
	assert.True(t, f2.Equal(fw))

	b, err := matrix.FromInt64Rows(matrix.BigInt, rows)
	require.NoError(t, err)
	b2, err := b.Mul(b)
	require.NoError(t, err)
	bw, err := matrix.FromInt64Rows(matrix.BigInt, want)
	require.NoError(t, err)
	assert.True(t, b2.Equal(bw))

	wide, err := matrix.NewDense(matrix.Float64, 2, 2)
	require.NoError(t, err)
	_, err = f.Mul(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_SelectAndSlice(t *testing.T) {
	t.Parallel()
	m, err := matrix.FromInt64Rows(matrix.Float64, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	rows, err := m.SelectRows([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9}, rows.Row(0))
	assert.Equal(t, []float64{1, 2, 3}, rows.Row(1))

	cols, err := m.SelectCols([]int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 8}, cols.Col(0))

	s, err := m.Slice(1, 3, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, s.Row(0))
	assert.Equal(t, []float64{7, 8}, s.Row(1))

	_, err = m.SelectCols([]int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Slice(0, 4, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	d, err := m.Diag()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 9}, d)
	_, err = cols.Diag()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestToCSR_PowersMatchDense(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromRows(matrix.Float64, [][]float64{{0, 1, 1, 0}, {1, 0, 0, 0}, {1, 0, 0, 1}, {0, 0, 1, 0}})
	require.NoError(t, err)
	s, err := matrix.ToCSR(a)
	require.NoError(t, err)
	assert.Equal(t, 6, s.NNZ())

	m := a.Clone()
	p := s
	for k := 2; k <= 5; k++ {
		m, err = m.Mul(a)
		require.NoError(t, err)
		next := &sparse.CSR{}
		next.Mul(p, s)
		p = next

		want, err := m.Diag()
		require.NoError(t, err)
		got, err := matrix.DiagOf(p)
		require.NoError(t, err)
		require.Equal(t, want, got, "power %d", k)
	}
}

func TestToCSR_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.ToCSR(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewDense(matrix.Float64, 0, 0)
	require.NoError(t, err)
	_, err = matrix.ToCSR(empty)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	rect, err := matrix.FromRows(matrix.Float64, [][]float64{{1, 0, 2}})
	require.NoError(t, err)
	s, err := matrix.ToCSR(rect)
	require.NoError(t, err)
	_, err = matrix.DiagOf(s)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEqual_ShapeMismatch(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDense(matrix.Float64, 2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(matrix.Float64, 3, 2)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.True(t, a.Equal(a.Clone()))
}

func TestRowGroups_FirstOccurrenceLabels(t *testing.T) {
	t.Parallel()
	m, err := matrix.FromRows(matrix.Float64, [][]float64{
		{2, 0}, {1, 1}, {2, 0}, {1, 1}, {0, 3}, {math.Copysign(0, -1), 3},
	})
	require.NoError(t, err)

	labels, firsts := m.RowGroups()
	assert.Equal(t, []int{0, 1, 0, 1, 2, 2}, labels)
	assert.Equal(t, []int{0, 1, 4}, firsts)
	assert.Equal(t, m.HashRow(0), m.HashRow(2))
}

func TestRowGroups_BigIntLargeValues(t *testing.T) {
	t.Parallel()
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	hugePlus := new(big.Int).Add(huge, big.NewInt(1))
	m, err := matrix.FromRows(matrix.BigInt, [][]*big.Int{{huge}, {hugePlus}, {new(big.Int).Set(huge)}})
	require.NoError(t, err)

	labels, firsts := m.RowGroups()
	assert.Equal(t, []int{0, 1, 0}, labels)
	assert.Equal(t, []int{0, 1}, firsts)
}

func TestAdjacency_InsertionOrderAndWeights(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("b", "a", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "a", 1)
	require.NoError(t, err)

	a, ids, err := matrix.Adjacency(g, matrix.Float64)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)
	assert.Equal(t, []float64{0, 2}, a.Row(0))
	assert.Equal(t, []float64{2, 1}, a.Row(1))
	require.NoError(t, matrix.ValidateSymmetric(a))

	_, _, err = matrix.Adjacency[float64](nil, matrix.Float64)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	m, err := matrix.FromInt64Rows(matrix.BigInt, [][]int64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(m), matrix.ErrAsymmetry)

	r, err := matrix.NewDense(matrix.BigInt, 2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(r), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateNotNil[*big.Int](nil), matrix.ErrNilMatrix)
}

func TestToFloat64AndGonumRoundTrip(t *testing.T) {
	t.Parallel()
	b, err := matrix.FromInt64Rows(matrix.BigInt, [][]int64{{1, 2}, {2, 5}})
	require.NoError(t, err)
	f := matrix.ToFloat64(b)
	assert.Equal(t, []float64{2, 5}, f.Row(1))

	sym, err := matrix.ToSymDense(f)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sym.At(0, 1))
	back := matrix.FromGonum(sym)
	assert.True(t, back.Equal(f))
}
