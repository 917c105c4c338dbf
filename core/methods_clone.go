// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// The clone continues the source's edge ID sequence, so future AddEdge calls on
// the clone never reuse an ID that exists in the source.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	for id = range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Edge IDs are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		if clone.adjacency[e.From] == nil {
			clone.adjacency[e.From] = make(map[string]string)
		}
		clone.adjacency[e.From][e.To] = eid
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
