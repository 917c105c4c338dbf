// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Predecessors).
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() and Predecessors() return IDs sorted lex asc.
// Concurrency:
//   - Reads hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the outgoing edges of the vertex id, sorted by Edge.ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	toMap := g.adjacency[id]
	out := make([]*Edge, 0, len(toMap))
	var eid string
	for _, eid = range toMap {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the IDs of the out-neighbors of id, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(g.adjacency[id]))
	var to string
	for to = range g.adjacency[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Predecessors returns the IDs of vertices with an edge into id, sorted ascending.
// Complexity: O(V) scan over adjacency buckets.
func (g *Graph) Predecessors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var ids []string
	var from string
	var toMap map[string]string
	for from, toMap = range g.adjacency {
		if _, ok := toMap[id]; ok {
			ids = append(ids, from)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
