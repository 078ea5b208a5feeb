// Package core provides a thread-safe, undirected in-memory Graph used as the
// shared representation of every configuration this module builds.
//
// The Graph G = (V,E) is simple by default:
//
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v][edgeID] = struct{}{} (mirrored for every edge)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	AddEdge(from, to string) (edgeID string, err) // O(1)
//	RemoveEdge(edgeID string) error               // O(1)
//	HasVertex, HasEdge                            // O(1)
//	NeighborIDs(id string) ([]string, error)      // O(d log d), unique, sorted
//	Vertices() []string                           // O(V log V), sorted by LessID
//	Edges() []*Edge                               // O(E log E)
//	Degree(id string) (int, error)                // O(d)
//	SetVertexMeta / VertexMeta                    // O(1)
//	Clone() *Graph                                // O(V+E)
//
// Vertex IDs that are canonical decimals ("0", "1", ..., "39") sort
// numerically, so Vertices()[i] is the vertex built from object i.
package core
