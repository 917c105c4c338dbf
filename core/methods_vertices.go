// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices/VertexCount/Degree.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Vertex catalog under muVert; incident edge removal additionally under muEdgeAdj.
//   - Lock order is muVert -> muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex with the given ID if absent.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and returns nil.
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
	g.vertices[id] = &Vertex{ID: id}

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

// RemoveVertex deletes a vertex and every edge that starts or ends at it.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 3: Verify presence (ErrVertexNotFound).
//   - Stage 4: Drop outgoing edges via adjacency[id], then incoming edges via
//     adjacency[*][id].
//   - Stage 5: Delete the vertex record.
//
// Complexity: O(V + deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// outgoing
	var eid string
	for _, eid = range g.adjacency[id] {
		delete(g.edges, eid)
	}
	delete(g.adjacency, id)

	// incoming
	var from string
	var toMap map[string]string
	var ok bool
	for from, toMap = range g.adjacency {
		if eid, ok = toMap[id]; !ok {
			continue
		}
		delete(g.edges, eid)
		delete(toMap, id)
		if len(toMap) == 0 {
			delete(g.adjacency, from)
		}
	}

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the in- and out-degree of a vertex. A self-loop counts once
// in each direction.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(V) for the in-degree scan.
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out = len(g.adjacency[id])
	var toMap map[string]string
	for _, toMap = range g.adjacency {
		if _, ok := toMap[id]; ok {
			in++
		}
	}

	return in, out, nil
}
