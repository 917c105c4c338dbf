// Package dijkstra provides Dijkstra's single-source shortest-path algorithm on
// directed core.Graph values with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map; PathTo and Paths rebuild
//     vertex sequences from it.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Deterministic ties: the heap orders by (distance, vertex ID) and only a
//     strictly shorter candidate replaces a predecessor.
//
// Unreachable vertices keep distance math.Inf(1).
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func PathTo(prev map[string]string, source, target string) ([]string, error)
//	func Paths(dist map[string]float64, prev map[string]string, source string) map[string][]string
package dijkstra
