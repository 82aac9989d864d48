// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Adds vertices 0..n-1, then edges i-(i+1 mod n) for i=0..n-1.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Cycle returns a Constructor that builds the cycle C_n.
// Every vertex of a cycle falls in one walk class.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return builderErrorf(MethodCycle, ErrTooFewVertices, "n=%d < min=%d", n, MinCycleNodes)
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}

		return ring(g, cfg, MethodCycle, 0, n)
	}
}
