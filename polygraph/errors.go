// SPDX-License-Identifier: MIT
// Package: polygraph
//
// errors.go — sentinel errors for the walk-class engine.
//
// Policy:
//   - Return sentinels (wrapped with call-site context via %w) for caller
//     mistakes; callers match with errors.Is.
//   - LP infeasibility is NOT an error: it is LPResult{Success: false}.
//   - Precision risk and failed necessary conditions are logged, never returned.
package polygraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph is returned when walk classes are requested for a graph
	// without vertices.
	ErrEmptyGraph = errors.New("polygraph: graph has no vertices")

	// ErrPowerTooSmall is returned when a walk-length bound below 2 is requested.
	ErrPowerTooSmall = errors.New("polygraph: max power must be at least 2")

	// ErrBadRepresentative is returned when composite representatives do not
	// match the copy list or index outside the graph.
	ErrBadRepresentative = errors.New("polygraph: invalid representative set")

	// ErrTooFewColumns is returned when a minimal subset of r columns is
	// requested from a matrix with fewer than r columns.
	ErrTooFewColumns = errors.New("polygraph: fewer columns than classes")

	// ErrNoSubset is returned when no column subset reproduces the full
	// flip-flop profile.
	ErrNoSubset = errors.New("polygraph: no column subset preserves flip-flop profile")

	// ErrTooManyClasses is returned when the exhaustive average-condition
	// enumeration is requested for more classes than it can index.
	ErrTooManyClasses = errors.New("polygraph: too many classes for exhaustive subset enumeration")

	// ErrBadSubset is returned when a column or power selection does not
	// exist in the reduced matrix.
	ErrBadSubset = errors.New("polygraph: invalid column subset")

	// ErrNotSolved is returned when a deceptive function is requested from an
	// unsuccessful linear program.
	ErrNotSolved = errors.New("polygraph: linear program was not solved")
)

// polygraphErrorf tags err with the operation name.
func polygraphErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

const (
	opDiagonal    = "DiagonalMatrix"
	opWalkClasses = "WalkClasses"
	opComposite   = "RepresentativeWalkClasses"
	opSubset      = "MinimalSubset"
	opNonneg      = "NonnegativeLinearSystemCheck"
	opDeceptive   = "DeceptiveFunction"
)
