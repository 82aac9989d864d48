// SPDX-License-Identifier: MIT
// Package: polygraph
//
// feasibility.go — linear systems whose solutions certify a deceptive
// function for the class structure of a Result.
//
// Both checks pose one variable per walk-length column of the reduced class
// matrix W' (Result.Reduced, converted to float64) and ask for coefficients
// x making W'·x constant across classes.
package polygraph

import (
	"math"
	"slices"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/polygraph/linalg"
	"github.com/katalvlaran/polygraph/matrix"
)

// PositiveLinearSystemCheck asks for x > 0 (every x_k ≥ ε) with W'·x = 1.
//
// Formulation: C = 1, Aub = -I, Bub = -ε·1, Aeq = W', Beq = 1.
// ε is lp.epsilon from cfg.
func PositiveLinearSystemCheck[T any](res *Result[T], cfg *Config, logger zerolog.Logger) LPResult {
	cfg = orDefault(cfg)
	w := matrix.ToFloat64(res.Reduced())
	r, c := w.Shape()
	eps := cfg.Epsilon()

	prog := LinearProgram{
		C:   ones(c),
		Aub: negIdentity(c),
		Bub: filled(c, -eps),
		Aeq: rowsOf(w),
		Beq: ones(r),
	}
	out := Solve(prog, cfg.LPTolerance())
	out.Powers = slices.Clone(res.ReducedPowers())
	logger.Info().
		Str("component", "positive_check").
		Int("classes", r).
		Int("columns", c).
		Bool("success", out.Success).
		Str("message", out.Message).
		Msg("Solved positive linear system")

	return out
}

// SubsetOption selects which reduced-matrix columns the nonnegative check uses.
type SubsetOption func(*subsetChoice)

type subsetChoice struct {
	minimal bool
	cols    []int
	powers  []int
}

// NoSubset uses every reduced column (the default).
func NoSubset() SubsetOption { return func(s *subsetChoice) { *s = subsetChoice{} } }

// MinimalSubsetColumns uses the columns found by MinimalSubset. Its
// errors reach the caller unchanged: ErrTooFewColumns when the reduced
// matrix has fewer walk lengths than classes (composite results usually
// do), and ErrNoSubset, which no combination of a full-profile search
// should produce. Fall back to NoSubset on either.
func MinimalSubsetColumns() SubsetOption {
	return func(s *subsetChoice) { *s = subsetChoice{minimal: true} }
}

// ColumnSubset uses the given reduced-matrix column indices.
func ColumnSubset(cols ...int) SubsetOption {
	return func(s *subsetChoice) { *s = subsetChoice{cols: slices.Clone(cols)} }
}

// PowerSubset uses the columns holding the given walk lengths.
func PowerSubset(powers ...int) SubsetOption {
	return func(s *subsetChoice) { *s = subsetChoice{powers: slices.Clone(powers)} }
}

// NonnegativeResult extends LPResult with the data needed to rebuild the
// deceptive function.
type NonnegativeResult struct {
	LPResult `yaml:",inline"`

	// Columns are the reduced-matrix columns the coefficients apply to.
	Columns []int `yaml:"columns" json:"columns"`
	// Offsets[i] is diag(expm(A)) at the representative of class i.
	Offsets []float64 `yaml:"offsets" json:"offsets"`
	// Gamma is the common diagonal value of the constructed function.
	Gamma float64 `yaml:"gamma" json:"gamma"`

	system *matrix.Dense[float64] // W' restricted to Columns
}

// Coefficients returns the walk-length coefficients (X without γ).
func (n *NonnegativeResult) Coefficients() []float64 {
	if len(n.X) == 0 {
		return nil
	}

	return n.X[:len(n.X)-1]
}

// FinalDiagonal returns W'·x + g per class: the diagonal of the constructed
// function at each class representative. On success every entry equals Gamma.
// It returns nil for an unsolved result or when X or Offsets no longer
// match the system's shape.
func (n *NonnegativeResult) FinalDiagonal() []float64 {
	if !n.Success || n.system == nil {
		return nil
	}
	x := n.Coefficients()
	if matrix.ValidateVecLen(x, n.system.Cols()) != nil || matrix.ValidateVecLen(n.Offsets, n.system.Rows()) != nil {
		return nil
	}
	out := make([]float64, len(n.Offsets))
	for i := range out {
		row := n.system.Row(i)
		v := n.Offsets[i]
		for k, xk := range x {
			v += row[k] * xk
		}
		out[i] = v
	}

	return out
}

// NonnegativeLinearSystemCheck asks for coefficients x, bounded below by a
// factorially decaying slack, and γ ≥ ε such that W'·x + g = γ·1 where
// g = diag(expm(A)) at the class representatives.
//
// Formulation over variables [x; γ]:
//
//	C   = 1
//	Aub = -I,          Bub = [-lb_0, …, -lb_{c-1}, -ε]
//	Aeq = [W' | -1],   Beq = -g
//
// with lb_k = -ε/(p_k)! for the walk length p_k of column k.
//
// Errors:
//   - subset selection errors (ErrBadSubset, ErrTooFewColumns, ErrNoSubset).
//   - expm failure when both the Padé path and the fallback fail.
func NonnegativeLinearSystemCheck[T any](res *Result[T], cfg *Config, logger zerolog.Logger, opts ...SubsetOption) (*NonnegativeResult, error) {
	cfg = orDefault(cfg)
	logger = logger.With().Str("component", "nonnegative_check").Logger()

	var choice subsetChoice
	for _, opt := range opts {
		opt(&choice)
	}
	cols, err := selectColumns(res, choice)
	if err != nil {
		return nil, polygraphErrorf(opNonneg, err)
	}

	reduced, err := res.Reduced().SelectCols(cols)
	if err != nil {
		return nil, polygraphErrorf(opNonneg, err)
	}
	w := matrix.ToFloat64(reduced)
	powers := make([]int, len(cols))
	for i, col := range cols {
		powers[i] = res.Powers[col]
	}

	diag, err := linalg.DiagExpm(matrix.ToFloat64(res.Adjacency), logger)
	if err != nil {
		return nil, polygraphErrorf(opNonneg, err)
	}
	g := make([]float64, len(res.UniqRows))
	for i, row := range res.UniqRows {
		g[i] = diag[row]
	}

	r, c := w.Shape()
	eps := cfg.Epsilon()
	bub := make([]float64, c+1)
	for k, p := range powers {
		bub[k] = eps / factorial(p) // -lb_k
	}
	bub[c] = -eps

	aeq := make([][]float64, r)
	for i := 0; i < r; i++ {
		aeq[i] = append(slices.Clone(w.Row(i)), -1)
	}
	beq := make([]float64, r)
	for i, v := range g {
		beq[i] = -v
	}

	prog := LinearProgram{
		C:   ones(c + 1),
		Aub: negIdentity(c + 1),
		Bub: bub,
		Aeq: aeq,
		Beq: beq,
	}
	out := &NonnegativeResult{
		LPResult: Solve(prog, cfg.LPTolerance()),
		Columns:  cols,
		Offsets:  g,
		system:   w,
	}
	out.Powers = powers
	if out.Success {
		out.Gamma = out.X[c]
	}

	logger.Info().
		Int("classes", r).
		Ints("powers", powers).
		Bool("success", out.Success).
		Str("message", out.Message).
		Msg("Solved nonnegative linear system")

	return out, nil
}

// selectColumns resolves a subset choice to reduced-matrix column indices.
func selectColumns[T any](res *Result[T], choice subsetChoice) ([]int, error) {
	reduced := res.Reduced()
	nCols := reduced.Cols()
	switch {
	case choice.minimal:
		_, cols, err := MinimalSubset(reduced)
		return cols, err
	case choice.cols != nil:
		for _, col := range choice.cols {
			if col < 0 || col >= nCols {
				return nil, ErrBadSubset
			}
		}
		return choice.cols, nil
	case choice.powers != nil:
		cols := make([]int, len(choice.powers))
		for i, p := range choice.powers {
			col := slices.Index(res.Powers[:nCols], p)
			if col < 0 {
				return nil, ErrBadSubset
			}
			cols[i] = col
		}
		return cols, nil
	default:
		cols := make([]int, nCols)
		for i := range cols {
			cols[i] = i
		}
		return cols, nil
	}
}

// factorial returns p! as a float64 (+Inf once it overflows).
func factorial(p int) float64 {
	return math.Gamma(float64(p) + 1)
}

func ones(n int) []float64 { return filled(n, 1) }

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// negIdentity returns the rows of -I. Only a negative n fails, which
// callers never pass.
func negIdentity(n int) [][]float64 {
	id, err := matrix.Identity(matrix.Float64, n)
	if err != nil {
		return nil
	}
	rows := rowsOf(id)
	for _, row := range rows {
		floats.Scale(-1, row)
	}

	return rows
}

func rowsOf(m *matrix.Dense[float64]) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = slices.Clone(m.Row(i))
	}

	return out
}
