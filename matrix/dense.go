// SPDX-License-Identifier: MIT
// Package: matrix
//
// dense.go — generic row-major dense matrix over a Ring.
//
// Purpose:
//   - One container for adjacency matrices, walk matrices and their reduced
//     forms, independent of the element type.
//
// Contract:
//   - Shapes may be empty (0×c or r×0); negative dimensions are rejected.
//   - At/Set validate indices and return ErrOutOfRange.
//   - Row returns a view into the backing storage for hot loops; it follows
//     slice indexing rules and panics on a bad index like any slice.
//
// Determinism & Performance:
//   - Flat []T storage, row-major; all kernels iterate i→j.
//   - Mul on Dense[float64] delegates to gonum BLAS (see gonum.go).
package matrix

import (
	"fmt"
	"strings"
)

// Dense is an r×c row-major matrix over Ring[T].
type Dense[T any] struct {
	r, c int     // number of rows and columns
	data []T     // flat backing storage, length == r*c
	ring Ring[T] // arithmetic for T
}

// NewDense allocates a zero-filled rows×cols matrix.
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T any](ring Ring[T], rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}
	data := make([]T, rows*cols)
	zero := ring.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: data, ring: ring}, nil
}

// FromRows builds a matrix from row slices (copied).
//
// Errors:
//   - ErrBadShape if rows are ragged.
func FromRows[T any](ring Ring[T], rows [][]T) (*Dense[T], error) {
	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(ring, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, ErrBadShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// FromInt64Rows builds a matrix from integer literals, converting through the ring.
func FromInt64Rows[T any](ring Ring[T], rows [][]int64) (*Dense[T], error) {
	conv := make([][]T, len(rows))
	for i, row := range rows {
		conv[i] = make([]T, len(row))
		for j, v := range row {
			conv[i][j] = ring.FromInt64(v)
		}
	}

	return FromRows(ring, conv)
}

// Identity returns the n×n identity matrix.
func Identity[T any](ring Ring[T], n int) (*Dense[T], error) {
	m, err := NewDense(ring, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = ring.One()
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Ring returns the arithmetic the matrix was built with.
func (m *Dense[T]) Ring() Ring[T] { return m.ring }

func (m *Dense[T]) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a view of row i backed by the matrix storage.
func (m *Dense[T]) Row(i int) []T { return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c] }

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) []T {
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// SetCol overwrites column j with v.
func (m *Dense[T]) SetCol(j int, v []T) error {
	if j < 0 || j >= m.c {
		return matrixErrorf(opSetCol, ErrOutOfRange)
	}
	if len(v) != m.r {
		return matrixErrorf(opSetCol, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// Diag returns the main diagonal of a square matrix.
func (m *Dense[T]) Diag() ([]T, error) {
	if m.r != m.c {
		return nil, matrixErrorf(opDiag, ErrNonSquare)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out, nil
}

// Clone returns a deep copy of the container. Elements are shared, which is
// safe because Ring arithmetic never mutates operands.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data, ring: m.ring}
}

// Equal reports element-wise equality under the ring order.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || ValidateSameShape(m, o) != nil {
		return false
	}
	for i := range m.data {
		if m.ring.Cmp(m.data[i], o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// SelectRows returns the submatrix made of rows idx, in the given order.
func (m *Dense[T]) SelectRows(idx []int) (*Dense[T], error) {
	out, err := NewDense(m.ring, len(idx), m.c)
	if err != nil {
		return nil, err
	}
	for k, i := range idx {
		if i < 0 || i >= m.r {
			return nil, matrixErrorf(opSelect, ErrOutOfRange)
		}
		copy(out.Row(k), m.Row(i))
	}

	return out, nil
}

// SelectCols returns the submatrix made of columns idx, in the given order.
func (m *Dense[T]) SelectCols(idx []int) (*Dense[T], error) {
	out, err := NewDense(m.ring, m.r, len(idx))
	if err != nil {
		return nil, err
	}
	for k, j := range idx {
		if j < 0 || j >= m.c {
			return nil, matrixErrorf(opSelect, ErrOutOfRange)
		}
		for i := 0; i < m.r; i++ {
			out.data[i*out.c+k] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Slice returns the copy of rows [r0,r1) and columns [c0,c1).
func (m *Dense[T]) Slice(r0, r1, c0, c1 int) (*Dense[T], error) {
	if r0 < 0 || r1 > m.r || r0 > r1 || c0 < 0 || c1 > m.c || c0 > c1 {
		return nil, matrixErrorf(opSelect, ErrOutOfRange)
	}
	out, err := NewDense(m.ring, r1-r0, c1-c0)
	if err != nil {
		return nil, err
	}
	for i := r0; i < r1; i++ {
		copy(out.Row(i-r0), m.data[i*m.c+c0:i*m.c+c1])
	}

	return out, nil
}

// Mul returns m·b.
//
// Implementation:
//   - Stage 1: Validate m.Cols == b.Rows (ErrDimensionMismatch).
//   - Stage 2: Dense[float64] goes through gonum (BLAS dgemm).
//   - Stage 3: Other rings use the i-k-j loop, skipping zero m[i,k].
//
// Complexity: Time O(r*k*c), Space O(r*c).
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if m.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	if fm, ok := any(m).(*Dense[float64]); ok {
		out := mulFloat(fm, any(b).(*Dense[float64]))
		return any(out).(*Dense[T]), nil
	}

	out, err := NewDense(m.ring, m.r, b.c)
	if err != nil {
		return nil, err
	}
	var i, k, j int
	for i = 0; i < m.r; i++ {
		dst := out.Row(i)
		for k = 0; k < m.c; k++ {
			aik := m.data[i*m.c+k]
			if m.ring.IsZero(aik) {
				continue
			}
			brow := b.Row(k)
			for j = 0; j < b.c; j++ {
				if m.ring.IsZero(brow[j]) {
					continue
				}
				dst[j] = m.ring.Add(dst[j], m.ring.Mul(aik, brow[j]))
			}
		}
	}

	return out, nil
}

// ToFloat64 converts every element through Ring.Float64.
func ToFloat64[T any](m *Dense[T]) *Dense[float64] {
	out := &Dense[float64]{r: m.r, c: m.c, data: make([]float64, len(m.data)), ring: Float64}
	for i, v := range m.data {
		out.data[i] = m.ring.Float64(v)
	}

	return out
}

// String renders the matrix one row per line.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
