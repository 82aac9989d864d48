// SPDX-License-Identifier: MIT
// Package: polygraph
//
// bound.go — how many walk lengths to accumulate.
//
// Closed-walk counts grow like maxDegree^k. In float64 the counts stay
// exactly representable while maxDegree^k < 2^53, i.e. k ≤ 53/log2(maxDegree).
// The heuristic never goes below DefaultSafePower (counts there are small
// enough in practice) and never beyond n, since powers past n add no new
// class information.
package polygraph

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/polygraph/core"
)

const (
	// DefaultSafePower is the largest walk length considered free of float64
	// precision risk regardless of degree.
	DefaultSafePower = 14

	// mantissaBits is the float64 significand width.
	mantissaBits = 53

	// minPower is the smallest admissible walk-length bound.
	minPower = 2
)

// PowerBound chooses the walk-length bound for g.
//
// Behavior:
//   - explicit > 0 is returned unchanged; values above DefaultSafePower log
//     a precision-risk warning.
//   - Otherwise k = floor(53 / log2(maxDegree)) (unbounded when maxDegree ≤ 1)
//     and the result is min(n, max(DefaultSafePower, k)), raised to 2 so even
//     a single-vertex graph yields one walk column.
func PowerBound(g *core.Graph, explicit int, logger zerolog.Logger) int {
	return powerBound(g, explicit, DefaultSafePower, logger)
}

func powerBound(g *core.Graph, explicit, safePower int, logger zerolog.Logger) int {
	if explicit > 0 {
		if explicit > safePower {
			logger.Warn().
				Int("max_power", explicit).
				Int("safe_power", safePower).
				Msg("Max power is large; floating-point walk counts may lose precision")
		}
		return explicit
	}

	n := g.VertexCount()
	bound := n
	if maxDeg := g.MaxDegree(); maxDeg > 1 {
		k := int(math.Floor(mantissaBits / math.Log2(float64(maxDeg))))
		bound = min(n, max(safePower, k))
	}
	if bound < minPower {
		bound = minPower
	}

	return bound
}
