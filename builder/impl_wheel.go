// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ MinWheelNodes (else ErrTooFewVertices).
//   - Vertex 0 is the hub; 1..n-1 form the rim cycle.
//   - Emits rim edges i-(i+1) (closing n-1 → 1) first, then spokes 0-i.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Wheel returns a Constructor that builds the wheel W_n: a hub joined to
// every vertex of a C_{n-1} rim.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return builderErrorf(MethodWheel, ErrTooFewVertices, "n=%d < min=%d", n, MinWheelNodes)
		}
		if err := addVertices(g, cfg, MethodWheel, n); err != nil {
			return err
		}
		if err := ring(g, cfg, MethodWheel, 1, n-1); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
