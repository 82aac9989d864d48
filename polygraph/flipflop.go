// SPDX-License-Identifier: MIT
// Package: polygraph
//
// flipflop.go — combinatorial flip-flopping predicates over a class matrix.
//
// Input convention: rows are classes, columns are walk lengths (any column
// subset of a walk matrix). All comparisons are exact in the matrix ring;
// nothing here rounds or divides.
package polygraph

import (
	"math/bits"

	"github.com/katalvlaran/polygraph/matrix"
)

// MaxAverageClasses is the largest class count the exhaustive
// average-condition check accepts. It needs 2^r subset sums and 3^r
// (S, T) pairs; beyond this size the enumeration cannot finish anyway.
const MaxAverageClasses = 24

// Profile is the 4-tuple of flip-flop properties of a class matrix.
type Profile struct {
	Pairwise         bool `yaml:"pairwise" json:"pairwise"`
	Dominant         bool `yaml:"dominant" json:"dominant"`
	AverageCondition bool `yaml:"average_condition" json:"average_condition"`
	EachClassMax     bool `yaml:"each_class_max" json:"each_class_max"`
}

// PairwiseFlipFlopping reports whether every pair of classes crosses: for
// each i < j there are columns x, y with w[i,x] > w[j,x] and w[i,y] < w[j,y].
//
// Complexity: Time O(r²·c).
func PairwiseFlipFlopping[T any](w *matrix.Dense[T]) bool {
	ring := w.Ring()
	r := w.Rows()
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			var above, below bool
			ri, rj := w.Row(i), w.Row(j)
			for k := range ri {
				switch ring.Cmp(ri[k], rj[k]) {
				case 1:
					above = true
				case -1:
					below = true
				}
				if above && below {
					break
				}
			}
			if !above || !below {
				return false
			}
		}
	}

	return true
}

// DominantFlipFlopping reports whether every class has a column where its
// value strictly exceeds the sum of all other classes at that column.
//
// Complexity: Time O(r·c).
func DominantFlipFlopping[T any](w *matrix.Dense[T]) bool {
	ring := w.Ring()
	r, c := w.Shape()
	totals := make([]T, c)
	for k := range totals {
		totals[k] = ring.Zero()
	}
	for i := 0; i < r; i++ {
		for k, v := range w.Row(i) {
			totals[k] = ring.Add(totals[k], v)
		}
	}

	for i := 0; i < r; i++ {
		row := w.Row(i)
		dominates := false
		for k := range row {
			others := ring.Sub(totals[k], row[k])
			if ring.Cmp(row[k], others) > 0 {
				dominates = true
				break
			}
		}
		if !dominates {
			return false
		}
	}

	return true
}

// AverageConditionFlipFlopping reports whether for every nonempty proper
// class subset S and every nonempty T disjoint from S there is a column
// where the mean of S strictly exceeds the mean of T. Means are compared
// without division: sum(S)·|T| > sum(T)·|S|.
//
// Implementation:
//   - Stage 1: Build subset sums for all 2^r masks (sum[mask] = sum[mask
//     without lowest bit] + lowest row).
//   - Stage 2: For each S, walk every nonempty submask T of its complement.
//
// Errors:
//   - ErrTooManyClasses if r > MaxAverageClasses.
//
// Complexity: Time O(3^r·c), Space O(2^r·c).
func AverageConditionFlipFlopping[T any](w *matrix.Dense[T]) (bool, error) {
	r, c := w.Shape()
	if r > MaxAverageClasses {
		return false, ErrTooManyClasses
	}
	if r < 2 {
		return true, nil
	}
	ring := w.Ring()
	full := uint64(1)<<uint(r) - 1

	sums := make([][]T, full+1)
	sums[0] = make([]T, c)
	for k := range sums[0] {
		sums[0][k] = ring.Zero()
	}
	for mask := uint64(1); mask <= full; mask++ {
		low := bits.TrailingZeros64(mask)
		prev := sums[mask&(mask-1)]
		row := w.Row(low)
		cur := make([]T, c)
		for k := range cur {
			cur[k] = ring.Add(prev[k], row[k])
		}
		sums[mask] = cur
	}

	sizes := make([]T, r+1)
	for k := range sizes {
		sizes[k] = ring.FromInt64(int64(k))
	}

	for s := uint64(1); s < full; s++ {
		comp := full ^ s
		sizeS := sizes[bits.OnesCount64(s)]
		sumS := sums[s]
		for t := comp; t > 0; t = (t - 1) & comp {
			sizeT := sizes[bits.OnesCount64(t)]
			sumT := sums[t]
			exceeds := false
			for k := 0; k < c; k++ {
				if ring.Cmp(ring.Mul(sumS[k], sizeT), ring.Mul(sumT[k], sizeS)) > 0 {
					exceeds = true
					break
				}
			}
			if !exceeds {
				return false, nil
			}
		}
	}

	return true, nil
}

// EachClassMax reports whether every class has a column where it strictly
// exceeds every other class.
//
// Complexity: Time O(r²·c).
func EachClassMax[T any](w *matrix.Dense[T]) bool {
	ring := w.Ring()
	r := w.Rows()
	for i := 0; i < r; i++ {
		row := w.Row(i)
		found := false
		for k := range row {
			isMax := true
			for j := 0; j < r; j++ {
				if j != i && ring.Cmp(row[k], w.Row(j)[k]) <= 0 {
					isMax = false
					break
				}
			}
			if isMax {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// FlipFlopProfile evaluates all four predicates on w.
func FlipFlopProfile[T any](w *matrix.Dense[T]) (Profile, error) {
	avg, err := AverageConditionFlipFlopping(w)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Pairwise:         PairwiseFlipFlopping(w),
		Dominant:         DominantFlipFlopping(w),
		AverageCondition: avg,
		EachClassMax:     EachClassMax(w),
	}, nil
}
