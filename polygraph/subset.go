// SPDX-License-Identifier: MIT
package polygraph

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/polygraph/matrix"
)

// MinimalSubset finds the first set of r = w.Rows() columns whose submatrix
// has the same flip-flop Profile as w.
//
// Combinations are visited in lexicographic order starting at [0..r-1], so
// the earliest walk lengths win ties. The returned column indices are
// ascending.
//
// Errors:
//   - ErrTooFewColumns if w has fewer columns than rows.
//   - ErrNoSubset if no combination reproduces the profile.
//   - ErrTooManyClasses from the average-condition enumeration.
//
// Complexity: Time O(C(c, r)·3^r·r), Space O(2^r·r).
func MinimalSubset[T any](w *matrix.Dense[T]) (*matrix.Dense[T], []int, error) {
	r, c := w.Shape()
	if c < r {
		return nil, nil, polygraphErrorf(opSubset, ErrTooFewColumns)
	}
	want, err := FlipFlopProfile(w)
	if err != nil {
		return nil, nil, polygraphErrorf(opSubset, err)
	}

	gen := combin.NewCombinationGenerator(c, r)
	idx := make([]int, r)
	for gen.Next() {
		gen.Combination(idx)
		sub, err := w.SelectCols(idx)
		if err != nil {
			return nil, nil, polygraphErrorf(opSubset, err)
		}
		got, err := FlipFlopProfile(sub)
		if err != nil {
			return nil, nil, polygraphErrorf(opSubset, err)
		}
		if got == want {
			cols := make([]int, r)
			copy(cols, idx)
			return sub, cols, nil
		}
	}

	return nil, nil, polygraphErrorf(opSubset, ErrNoSubset)
}
