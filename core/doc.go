// Package core provides a thread-safe in-memory directed graph with a single
// float64 attribute per edge.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Always directed: an edge u→v is only visible from u.
//   - Always simple: at most one edge per ordered (u,v) pair (ErrMultiEdgeNotAllowed).
//   - Self-loops only when constructed WithLoops().
//   - Constant-time edge lookup via nested maps: adjacency[from][to] = edgeID.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Deterministic iteration:
//
//	Vertices(), NeighborIDs() and Predecessors() return IDs sorted ascending;
//	Edges() and Neighbors() return edges in creation order of their IDs.
//
// Cloning:
//
//	CloneEmpty copies flags and vertices; Clone additionally deep-copies edges
//	and adjacency. Higher layers use Clone to build new graphs without touching
//	the caller's instance.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B", 0.5)
//	e, _ := g.EdgeBetween("A", "B")
//	fmt.Println(e.Weight) // 0.5
package core
