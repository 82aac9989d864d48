// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_polyhedra.go - layered polyhedral families that are walk-regular in
// layers but not vertex-transitive, the classic sources of deceptive
// functions.
//
// PyramidPrism(faces, layers):
//   - Vertex 0 is the apex; rows i = 0..layers+1 hold i·faces + j,
//     j = 1..faces; the opposite apex is (layers+2)·faces + 1.
//   - Each row is a ring; row i vertex j links to row i+1 vertex j; apexes
//     link to the first and last rows.
//
// Orthobicupola(sides):
//   - Top ring 0..s-1, middle ring s..3s-1, bottom ring 3s..4s-1.
//   - Middle vertex i (0-based) links to top i/2 and bottom i/2.
//
// SnowflakeCycle(flake, inner, outer):
//   - A snowflake is a center (local 0) plus a 2·flake cycle (locals
//     1..2·flake); the center links to even cycle positions.
//   - inner snowflakes form a ring joined at even positions; outer copies of
//     that ring form a ring joined at odd positions.
//   - Vertex index: o·(inner·m) + c·m + local with m = 1 + 2·flake.
//
// Complexity:
//   - Time: O(n + m). Space: O(m) for the edge list.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// PyramidPrism returns a Constructor that builds a faces-gonal prism with
// layers extra middle rings, capped by an apex at each end.
func PyramidPrism(faces, layers int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if faces < MinPrismFaces {
			return builderErrorf(MethodPyramidPrism, ErrTooFewVertices, "faces=%d < min=%d", faces, MinPrismFaces)
		}
		if layers < 0 {
			return builderErrorf(MethodPyramidPrism, ErrInvalidParameter, "layers=%d < 0", layers)
		}
		numRows := 2 + layers
		bottom := numRows*faces + 1
		at := func(row, j int) int { return row*faces + j + 1 }

		var edges [][2]int
		for j := 0; j < faces; j++ {
			edges = append(edges, [2]int{0, at(0, j)})
		}
		for row := 0; row+1 < numRows; row++ {
			for j := 0; j < faces; j++ {
				edges = append(edges, [2]int{at(row, j), at(row+1, j)})
			}
		}
		for row := 0; row < numRows; row++ {
			for _, p := range ringPairs(faces) {
				edges = append(edges, [2]int{at(row, p[0]), at(row, p[1])})
			}
		}
		for j := 0; j < faces; j++ {
			edges = append(edges, [2]int{bottom, at(numRows-1, j)})
		}

		return addIndexed(g, cfg, MethodPyramidPrism, bottom+1, edges)
	}
}

// Orthobicupola returns a Constructor that builds the sides-gonal
// orthobicupola (sides = 3 is the triangular orthobicupola J27).
func Orthobicupola(sides int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if sides < MinPrismFaces {
			return builderErrorf(MethodOrthobicupola, ErrTooFewVertices, "sides=%d < min=%d", sides, MinPrismFaces)
		}
		top, middle, bottom := 0, sides, 3*sides

		var edges [][2]int
		for _, r := range []struct{ base, k int }{{top, sides}, {middle, 2 * sides}, {bottom, sides}} {
			for _, p := range ringPairs(r.k) {
				edges = append(edges, [2]int{r.base + p[0], r.base + p[1]})
			}
		}
		for _, base := range []int{top, bottom} {
			for i := 0; i < 2*sides; i++ {
				edges = append(edges, [2]int{middle + i, base + i/2})
			}
		}

		return addIndexed(g, cfg, MethodOrthobicupola, 4*sides, edges)
	}
}

// SnowflakeCycle returns a Constructor that builds outer copies of a ring
// of inner snowflakes, each snowflake a center over a 2·flake cycle.
// Total vertices: (1 + 2·flake)·inner·outer.
func SnowflakeCycle(flake, inner, outer int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if flake < MinFlakeSize {
			return builderErrorf(MethodSnowflakeCycle, ErrTooFewVertices, "flake=%d < min=%d", flake, MinFlakeSize)
		}
		if inner < MinRingCopies || outer < MinRingCopies {
			return builderErrorf(MethodSnowflakeCycle, ErrInvalidParameter, "inner=%d, outer=%d < min=%d", inner, outer, MinRingCopies)
		}
		m := 1 + 2*flake
		at := func(o, c, local int) int { return o*inner*m + c*m + local }

		var edges [][2]int
		for o := 0; o < outer; o++ {
			for c := 0; c < inner; c++ {
				for _, p := range ringPairs(2 * flake) {
					edges = append(edges, [2]int{at(o, c, 1+p[0]), at(o, c, 1+p[1])})
				}
				for j := 0; j < 2*flake; j += 2 {
					edges = append(edges, [2]int{at(o, c, 0), at(o, c, 1+j)})
				}
			}
			for _, p := range ringPairs(inner) {
				for j := 0; j < 2*flake; j += 2 {
					edges = append(edges, [2]int{at(o, p[0], 1+j), at(o, p[1], 1+j)})
				}
			}
		}
		for _, p := range ringPairs(outer) {
			for c := 0; c < inner; c++ {
				for j := 1; j < 2*flake; j += 2 {
					edges = append(edges, [2]int{at(p[0], c, 1+j), at(p[1], c, 1+j)})
				}
			}
		}

		return addIndexed(g, cfg, MethodSnowflakeCycle, m*inner*outer, edges)
	}
}
