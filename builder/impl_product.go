// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_product.go - hypercubes and the Cartesian product of two graphs.
//
// Hypercube(dim):
//   - Vertices 0..2^dim-1; i and j are adjacent iff they differ in one bit.
//
// CartesianProduct(g, h):
//   - Vertex (u, v) has index u·|h| + v, with u and v the insertion
//     positions in g and h.
//   - (u, v1)-(u, v2) for every h edge v1-v2 and every u, then
//     (u1, v)-(u2, v) for every g edge u1-u2 and every v.
//   - Factor self-loops are skipped; parallel factor edges are repeated.
//   - Weights come from the builder config, not from the factors.
//
// Complexity:
//   - Hypercube: O(dim·2^dim). CartesianProduct: O(|g|·|E(h)| + |h|·|E(g)|).
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Hypercube returns a Constructor that builds the dim-dimensional cube Q_dim.
func Hypercube(dim int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if dim < MinHypercubeDim {
			return builderErrorf(MethodHypercube, ErrTooFewVertices, "dim=%d < min=%d", dim, MinHypercubeDim)
		}
		if dim > MaxHypercubeDim {
			return builderErrorf(MethodHypercube, ErrInvalidParameter, "dim=%d > max=%d", dim, MaxHypercubeDim)
		}
		n := 1 << dim
		edges := make([][2]int, 0, dim*n/2)
		for i := 0; i < n; i++ {
			for b := 0; b < dim; b++ {
				if j := i | 1<<b; j != i {
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return addIndexed(g, cfg, MethodHypercube, n, edges)
	}
}

// CartesianProduct returns a Constructor that builds the Cartesian product
// g □ h of two existing graphs.
func CartesianProduct(g, h *core.Graph) Constructor {
	return func(out *core.Graph, cfg builderConfig) error {
		if g == nil || h == nil {
			return builderErrorf(MethodCartesianProduct, ErrInvalidParameter, "nil factor")
		}
		ng, nh := g.VertexCount(), h.VertexCount()
		if ng == 0 || nh == 0 {
			return builderErrorf(MethodCartesianProduct, ErrTooFewVertices, "factor sizes %d×%d", ng, nh)
		}
		gEdges, hEdges := indexEdges(g), indexEdges(h)

		edges := make([][2]int, 0, ng*len(hEdges)+nh*len(gEdges))
		for u := 0; u < ng; u++ {
			for _, e := range hEdges {
				edges = append(edges, [2]int{u*nh + e[0], u*nh + e[1]})
			}
		}
		for _, e := range gEdges {
			for v := 0; v < nh; v++ {
				edges = append(edges, [2]int{e[0]*nh + v, e[1]*nh + v})
			}
		}

		return addIndexed(out, cfg, MethodCartesianProduct, ng*nh, edges)
	}
}

// indexEdges lists the non-loop edges of g as insertion-position pairs.
func indexEdges(g *core.Graph) [][2]int {
	index := g.VertexIndex()
	var out [][2]int
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		out = append(out, [2]int{index[e.From], index[e.To]})
	}

	return out
}
