// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Path returns a Constructor that builds the path P_n.
// Its walk classes pair vertex i with vertex n-1-i.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return builderErrorf(MethodPath, ErrTooFewVertices, "n=%d < min=%d", n, MinPathNodes)
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
