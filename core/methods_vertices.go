// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, queries, degrees, and category annotation.
//
// Determinism:
//   - Vertices() returns IDs in insertion order. Matrix rows built from the
//     graph follow this order, so it is part of the public contract.
//
// Concurrency:
//   - Vertex catalog and order protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj; lock order is muVert -> muEdgeAdj.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert, register the vertex and append it to the order.
//   - Stage 3: Under muEdgeAdj, bootstrap the adjacency bucket.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Category: NoCategory}
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// The relative order of the remaining vertices is preserved.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacencyList, id)
	delete(g.vertices, id)

	var i int
	for i = range g.order {
		if g.order[i] == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// Vertices returns all vertex IDs in insertion order.
//
// Determinism:
//   - Stable across calls for a fixed graph; the first vertex added is first.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexIndex maps every vertex ID to its position in Vertices().
func (g *Graph) VertexIndex() map[string]int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	idx := make(map[string]int, len(g.order))
	for i, id := range g.order {
		idx[id] = i
	}

	return idx
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Vertex returns the live vertex record for id.
// The pointer is shared with the graph; treat it as read-only.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Degree returns the number of edges incident to id.
//
// Policy:
//   - Each parallel edge counts once.
//   - A self-loop counts once, like its single diagonal adjacency entry,
//     so the degree is the row sum of the unweighted adjacency matrix.
//     On simple graphs (loops allowed) it equals diag(A²).
//   - Weights are ignored.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return degreeLocked(g, id), nil
}

// DegreeSequence returns the degrees of all vertices in insertion order.
func (g *Graph) DegreeSequence() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, len(g.order))
	for i, id := range g.order {
		out[i] = degreeLocked(g, id)
	}

	return out
}

// MaxDegree returns the largest vertex degree (0 for an empty graph).
func (g *Graph) MaxDegree() int {
	var best int
	for _, d := range g.DegreeSequence() {
		if d > best {
			best = d
		}
	}

	return best
}

// SetCategory annotates id with a class label.
func (g *Graph) SetCategory(id string, category int) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Category = category

	return nil
}

// Category returns the class label of id; ok is false when the vertex is
// missing or was never annotated.
func (g *Graph) Category(id string) (category int, ok bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, found := g.vertices[id]
	if !found || v.Category == NoCategory {
		return NoCategory, false
	}

	return v.Category, true
}

// Categories returns the class label of every vertex in insertion order.
func (g *Graph) Categories() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]int, len(g.order))
	for i, id := range g.order {
		out[i] = g.vertices[id].Category
	}

	return out
}

// degreeLocked sums the unweighted adjacency row of id; caller holds muEdgeAdj.
func degreeLocked(g *Graph, id string) int {
	var deg int
	for _, set := range g.adjacencyList[id] {
		deg += len(set)
	}

	return deg
}
