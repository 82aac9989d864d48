// SPDX-License-Identifier: MIT
// Package: polygraph/builder
//
// impl_spider.go - spiders and spider tori.
//
// Spider(degree, length):
//   - Vertex 0 is the center; arm a at level l (0-based) is 1 + l·degree + a.
//   - The center links to every level-0 vertex; each arm is a path outward.
//   - n = 1 + degree·length.
//
// SpiderTorus(degree, length, copies):
//   - Start from one spider. For level l = 0..length-1, take copies[l]
//     copies of the current graph (copy c occupies indices c·size..c·size+size-1)
//     and join consecutive copies in a ring at every vertex whose spider
//     index lies on level l.
//   - A ring of two copies is a single link; larger rings close.
//   - n = (1 + degree·length)·Π copies.
//   - Walk classes are known by construction: the center, then one vertex
//     per level. Representatives are [l·degree for l = 0..length].
//
// Complexity:
//   - Time: O(n + m) for m output edges. Space: O(m) for the edge list.
package builder

import (
	"github.com/katalvlaran/polygraph/core"
)

// Spider returns a Constructor that builds a spider with degree arms of
// length vertices each.
func Spider(degree, length int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, edges, err := spiderEdges(degree, length)
		if err != nil {
			return err
		}

		return addIndexed(g, cfg, MethodSpider, n, edges)
	}
}

// SpiderTorusGraph returns a Constructor that builds the spider torus graph
// without its class metadata. Use SpiderTorus to get the representatives.
func SpiderTorusGraph(degree, length int, copies []int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, edges, err := spiderTorusEdges(degree, length, copies)
		if err != nil {
			return err
		}

		return addIndexed(g, cfg, MethodSpiderTorus, n, edges)
	}
}

// SpiderTorus builds a spider torus on a fresh unweighted graph together
// with its class representatives.
//
// Errors:
//   - ErrTooFewVertices if degree or length is below its minimum.
//   - ErrInvalidParameter if len(copies) != length or some copies[l] < 2.
func SpiderTorus(degree, length int, copies []int, bopts ...BuilderOption) (*Composite, error) {
	g, err := BuildGraph(nil, bopts, SpiderTorusGraph(degree, length, copies))
	if err != nil {
		return nil, err
	}
	reps := make([]int, length+1)
	for l := range reps {
		reps[l] = l * degree
	}

	return &Composite{
		Graph:           g,
		Representatives: reps,
		Copies:          append([]int(nil), copies...),
		Degree:          degree,
		Length:          length,
	}, nil
}

func spiderEdges(degree, length int) (int, [][2]int, error) {
	if degree < MinSpiderDegree {
		return 0, nil, builderErrorf(MethodSpider, ErrTooFewVertices, "degree=%d < min=%d", degree, MinSpiderDegree)
	}
	if length < MinSpiderLength {
		return 0, nil, builderErrorf(MethodSpider, ErrTooFewVertices, "length=%d < min=%d", length, MinSpiderLength)
	}
	n := 1 + degree*length
	edges := make([][2]int, 0, n-1)
	for a := 0; a < degree; a++ {
		edges = append(edges, [2]int{0, 1 + a})
	}
	for l := 0; l+1 < length; l++ {
		for a := 0; a < degree; a++ {
			edges = append(edges, [2]int{1 + l*degree + a, 1 + (l+1)*degree + a})
		}
	}

	return n, edges, nil
}

func spiderTorusEdges(degree, length int, copies []int) (int, [][2]int, error) {
	rows, edges, err := spiderEdges(degree, length)
	if err != nil {
		return 0, nil, err
	}
	if len(copies) != length {
		return 0, nil, builderErrorf(MethodSpiderTorus, ErrInvalidParameter, "len(copies)=%d != length=%d", len(copies), length)
	}
	for l, k := range copies {
		if k < MinRingCopies {
			return 0, nil, builderErrorf(MethodSpiderTorus, ErrInvalidParameter, "copies[%d]=%d < min=%d", l, k, MinRingCopies)
		}
	}

	size := rows
	for l, k := range copies {
		grown := make([][2]int, 0, k*len(edges)+k*size)
		for c := 0; c < k; c++ {
			off := c * size
			for _, e := range edges {
				grown = append(grown, [2]int{e[0] + off, e[1] + off})
			}
		}
		lo, hi := 1+l*degree, 1+(l+1)*degree
		for _, p := range ringPairs(k) {
			for x := 0; x < size; x++ {
				if s := x % rows; s >= lo && s < hi {
					grown = append(grown, [2]int{p[0]*size + x, p[1]*size + x})
				}
			}
		}
		edges = grown
		size *= k
	}

	return size, edges, nil
}

// addIndexed inserts vertices 0..n-1, then edges by index.
func addIndexed(g *core.Graph, cfg builderConfig, method string, n int, edges [][2]int) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for _, e := range edges {
		if err := link(g, cfg, method, e[0], e[1]); err != nil {
			return err
		}
	}

	return nil
}
