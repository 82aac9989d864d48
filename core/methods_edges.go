// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle, adjacency queries, and edge catalog helpers.
//
// Determinism:
//   - Edges() is sorted by insertion sequence ("e1" < "e2" < ... numerically).
//   - Neighbors() follows vertex insertion order.
//
// Concurrency:
//   - Edges and adjacency are protected by muEdgeAdj.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge connects from and to with an undirected edge and returns its ID.
//
// Implementation:
//   - Stage 1: Validate endpoints, weight, and loop policy.
//   - Stage 2: Auto-create missing endpoints (AddVertex is idempotent).
//   - Stage 3: Under muEdgeAdj, enforce the multi-edge policy, register the
//     edge, and link both adjacency directions.
//
// Weights:
//   - Unweighted graphs accept weight 0 or 1 and store 1.
//   - Weighted graphs require weight > 0 so adjacency stays nonnegative and
//     every stored edge is a real connection.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	switch {
	case !g.weighted && weight != 0 && weight != 1:
		return "", ErrBadWeight
	case g.weighted && weight <= 0:
		return "", ErrBadWeight
	}
	if !g.weighted {
		weight = 1
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge joins from and to (either way).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns every edge ordered by insertion sequence.
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of cataloged edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the distinct neighbor IDs of id in vertex insertion order.
// A self-loop lists id itself.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	adj := g.adjacencyList[id]
	out := make([]string, 0, len(adj))
	for _, v := range g.order {
		if len(adj[v]) > 0 {
			out = append(out, v)
		}
	}

	return out, nil
}

// Weight returns the summed weight of all edges joining from and to
// (0 when they are not adjacent). This is the adjacency matrix entry.
func (g *Graph) Weight(from, to string) int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var w int64
	for eid := range g.adjacencyList[from][to] {
		w += g.edges[eid].Weight
	}

	return w
}

// ensureAdjacency allocates the from→to bucket; caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e in both directions and prunes empty buckets;
// caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
