// SPDX-License-Identifier: MIT
// Package: polygraph
//
// linprog.go — general-form linear programs solved with gonum's simplex.
//
// Problem form (all variables free):
//
//	minimize   C·x
//	subject to Aub·x ≤ Bub
//	           Aeq·x = Beq
//
// gonum's lp.Simplex needs standard form with a full-row-rank constraint
// matrix. lp.Convert supplies the standard form; the equality block is
// first row-reduced here so redundant equalities (common when class rows
// are linearly dependent) do not surface as singular bases.
package polygraph

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/polygraph/matrix"
)

// presolveTol is the relative pivot threshold for equality row reduction.
const presolveTol = 1e-9

// LinearProgram is a general-form LP; rows of Aub/Aeq are constraints.
type LinearProgram struct {
	C   []float64
	Aub [][]float64
	Bub []float64
	Aeq [][]float64
	Beq []float64
}

// LPResult is the outcome of Solve. Infeasibility is reported through
// Success=false and Message, never as a Go error.
type LPResult struct {
	X         []float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Success   bool      `yaml:"success" json:"success"`
	Message   string    `yaml:"message" json:"message"`
	Objective float64   `yaml:"objective" json:"objective"`
	// Powers are the walk lengths the leading entries of X apply to.
	Powers []int `yaml:"powers,omitempty" json:"powers,omitempty"`
}

// Solve minimizes lp with gonum's simplex; tol bounds the final reduced cost.
func Solve(prog LinearProgram, tol float64) (res LPResult) {
	nVar := len(prog.C)
	if msg := prog.shapeError(); msg != "" {
		return LPResult{Message: msg}
	}
	defer func() {
		if r := recover(); r != nil {
			res = LPResult{Message: fmt.Sprintf("solver failure: %v", r)}
		}
	}()

	aeq, beq, ok := reduceEqualities(prog.Aeq, prog.Beq, nVar)
	if !ok {
		return LPResult{Message: lp.ErrInfeasible.Error()}
	}

	var g, a mat.Matrix
	if len(prog.Aub) > 0 {
		g = denseFromRows(prog.Aub, nVar)
	}
	if len(aeq) > 0 {
		a = denseFromRows(aeq, nVar)
	}
	if g == nil && a == nil {
		return LPResult{Message: "linear program has no constraints"}
	}

	cNew, aNew, bNew := lp.Convert(prog.C, g, prog.Bub, a, beq)
	opt, xt, err := lp.Simplex(cNew, aNew, bNew, tol, nil)
	if err != nil {
		return LPResult{Message: solverMessage(err)}
	}

	x := make([]float64, nVar)
	floats.SubTo(x, xt[:nVar], xt[nVar:2*nVar])

	return LPResult{
		X:         x,
		Success:   true,
		Message:   "Optimization terminated successfully.",
		Objective: opt,
	}
}

func (prog LinearProgram) shapeError() string {
	nVar := len(prog.C)
	if nVar == 0 {
		return "linear program has no variables"
	}
	if matrix.ValidateVecLen(prog.Bub, len(prog.Aub)) != nil || matrix.ValidateVecLen(prog.Beq, len(prog.Aeq)) != nil {
		return "constraint rows and bounds differ in length"
	}
	for _, row := range prog.Aub {
		if matrix.ValidateVecLen(row, nVar) != nil {
			return "inequality row width differs from variable count"
		}
	}
	for _, row := range prog.Aeq {
		if matrix.ValidateVecLen(row, nVar) != nil {
			return "equality row width differs from variable count"
		}
	}

	return ""
}

func solverMessage(err error) string {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return "The problem is infeasible."
	case errors.Is(err, lp.ErrUnbounded):
		return "The problem is unbounded."
	default:
		return err.Error()
	}
}

func denseFromRows(rows [][]float64, cols int) *mat.Dense {
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data)
}

// reduceEqualities row-reduces [A | b] with partial pivoting and returns an
// equivalent full-row-rank system. ok is false when a zero row is left with
// a nonzero right-hand side (the equalities are inconsistent).
func reduceEqualities(a [][]float64, b []float64, cols int) ([][]float64, []float64, bool) {
	m := len(a)
	if m == 0 {
		return nil, nil, true
	}
	work := make([][]float64, m)
	rhs := make([]float64, m)
	var scale float64
	for i := range a {
		work[i] = append([]float64(nil), a[i]...)
		rhs[i] = b[i]
		for _, v := range a[i] {
			scale = math.Max(scale, math.Abs(v))
		}
	}
	tol := presolveTol * math.Max(scale, 1)

	rank := 0
	for col := 0; col < cols && rank < m; col++ {
		pivot, best := -1, tol
		for i := rank; i < m; i++ {
			if v := math.Abs(work[i][col]); v > best {
				pivot, best = i, v
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		rhs[rank], rhs[pivot] = rhs[pivot], rhs[rank]
		for i := rank + 1; i < m; i++ {
			f := work[i][col] / work[rank][col]
			if f == 0 {
				continue
			}
			floats.AddScaled(work[i], -f, work[rank])
			work[i][col] = 0
			rhs[i] -= f * rhs[rank]
		}
		rank++
	}

	bTol := presolveTol * math.Max(floats.Norm(b, math.Inf(1)), 1)
	for i := rank; i < m; i++ {
		if math.Abs(rhs[i]) > bTol {
			return nil, nil, false
		}
	}
	for i := 0; i < rank; i++ {
		for j, v := range work[i] {
			if math.Abs(v) <= tol {
				work[i][j] = 0
			}
		}
	}

	return work[:rank], rhs[:rank], true
}
