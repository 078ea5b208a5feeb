// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.

package core

import "sync/atomic"

// Clone returns a copy of the Graph: flags, vertices, edges and adjacency.
// Vertex metadata maps are shared with the source.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		ensureBucket(clone, id)
	}
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		link(clone, e.From, e.To, eid)
		if e.From != e.To {
			link(clone, e.To, e.From, eid)
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
