// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Adds vertices 0..n-1, then each pair {i,j}, i<j, once in
//     lexicographic order.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return builderErrorf(MethodComplete, ErrTooFewVertices, "n=%d < min=%d", n, MinCompleteNodes)
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
