// Package cascade models influence spreading over directed graphs whose edges
// carry independent activation probabilities.
//
// The module is organized as:
//
//	core/         thread-safe directed simple graph with float64 edge weights
//	dijkstra/     single-source shortest paths with deterministic tie-breaking
//	influence/    seed aggregation and log-distance most-probable paths
//	store/        NumPy .npy persistence for result vectors
//	cmd/cascade   CLI over YAML job files
//
// Two seeds feeding one vertex:
//
//	0 ──0.5──▶ 2 ◀──0.4── 1
//
// AggregateSeeds({0,1}) replaces both seeds with one vertex s and the edge
// s→2 with probability 1 − (1−0.5)(1−0.4) = 0.7. LogDistances from s then
// reports distance −ln 0.7 for 2, and exp(−distance) recovers the probability
// of the most likely activation path.
//
// Quick start:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("0", "2", 0.5)
//	_, _ = g.AddEdge("1", "2", 0.4)
//	merged, s, _ := influence.AggregateSeeds(g, []string{"0", "1"})
//	dist, paths, _ := influence.LogDistances(merged, s)
package cascade
