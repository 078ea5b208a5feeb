// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, metadata and degree queries.
//
// Determinism:
//   - Vertices() returns IDs sorted by LessID.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Behavior highlights:
//   - Adding an existing vertex is a no-op.
//   - Metadata is initialized to a non-nil map.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureBucket(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// SetVertexMeta stores key=value in the metadata of vertex id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetVertexMeta(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexMeta returns the metadata value stored under key for vertex id.
// ok is false when the vertex or the key is absent.
func (g *Graph) VertexMeta(id, key string) (value interface{}, ok bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, exists := g.vertices[id]
	if !exists {
		return nil, false
	}
	value, ok = v.Metadata[key]

	return value, ok
}

// Vertices returns all vertex IDs sorted by LessID.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	return SortIDs(ids)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints at id. A self-loop counts twice,
// parallel edges count once each.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := 0
	for nb, ids := range g.adjacency[id] {
		if nb == id {
			deg += 2 * len(ids)
			continue
		}
		deg += len(ids)
	}

	return deg, nil
}
