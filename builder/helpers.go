// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// helpers.go - index-addressed vertex and edge insertion shared by constructors.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// addVertices inserts cfg.idFn(0..n-1) in index order.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return builderErrorf(method, err, "AddVertex(%s)", id)
		}
	}

	return nil
}

// link adds an edge between the vertices at indices u and v.
func link(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	uID, vID := cfg.idFn(u), cfg.idFn(v)
	w := cfg.edgeWeight(g)
	if _, err := g.AddEdge(uID, vID, w); err != nil {
		return builderErrorf(method, err, "AddEdge(%s-%s, w=%d)", uID, vID, w)
	}

	return nil
}

// ring links base+0, base+1, ..., base+k-1 into a cycle C_k.
// For k = 2 it adds the single edge base-base+1.
func ring(g *core.Graph, cfg builderConfig, method string, base, k int) error {
	for _, p := range ringPairs(k) {
		if err := link(g, cfg, method, base+p[0], base+p[1]); err != nil {
			return err
		}
	}

	return nil
}

// ringPairs returns the index pairs (c, c+1 mod k) of a ring of k copies,
// with the closing pair omitted for k = 2.
func ringPairs(k int) [][2]int {
	if k == 2 {
		return [][2]int{{0, 1}}
	}
	out := make([][2]int, k)
	for c := range out {
		out[c] = [2]int{c, (c + 1) % k}
	}

	return out
}
