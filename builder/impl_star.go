// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Vertex 0 is the hub; leaves are 1..n-1.
//   - Emits spokes 0-i in increasing leaf order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return builderErrorf(MethodStar, ErrTooFewVertices, "n=%d < min=%d", n, MinStarNodes)
		}
		if err := addVertices(g, cfg, MethodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
