// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       NeighborIDs, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by (From, To) under LessID, then by ID.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to, adding missing
// endpoints.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the pair is already linked and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
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

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	link(g, from, to, eid)
	if from != to {
		link(g, to, from, eid)
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlink(g, e.From, e.To, eid)
	unlink(g, e.To, e.From, eid)

	return nil
}

// HasEdge reports whether at least one edge joins from and to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// NeighborIDs returns the distinct neighbors of id sorted by LessID.
// A looped vertex lists itself.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nb, ids := range g.adjacency[id] {
		if len(ids) > 0 {
			out = append(out, nb)
		}
	}

	return SortIDs(out), nil
}

// Edges returns all edges in deterministic order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.From != b.From {
			return LessID(a.From, b.From)
		}
		if a.To != b.To {
			return LessID(a.To, b.To)
		}
		return LessID(a.ID[1:], b.ID[1:])
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID; caller holds muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// ensureBucket creates the adjacency row for id; caller holds muEdgeAdj.
func ensureBucket(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// link records eid under adjacency[from][to]; caller holds muEdgeAdj.
func link(g *Graph, from, to, eid string) {
	ensureBucket(g, from)
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}

// unlink drops eid from adjacency[from][to] and prunes the empty bucket.
func unlink(g *Graph, from, to, eid string) {
	inner, ok := g.adjacency[from][to]
	if !ok {
		return
	}
	delete(inner, eid)
	if len(inner) == 0 {
		delete(g.adjacency[from], to)
	}
}
