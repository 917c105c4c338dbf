package influence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/dijkstra"
)

// LogWeightGraph builds the cost graph used by LogDistances: same vertices,
// every edge with probability p > 0 rewritten to weight −ln(p), and every
// p = 0 edge dropped. All resulting weights are ≥ 0.
//
// Errors: ErrNilGraph, ErrBadProbability.
//
// Complexity: O(V + E log E).
func LogWeightGraph(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := ValidateProbabilities(g); err != nil {
		return nil, err
	}

	var opts []core.GraphOption
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	out := core.NewGraph(opts...)
	for _, v := range g.Vertices() {
		if err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if e.Weight == 0 {
			continue
		}
		if _, err := out.AddEdge(e.From, e.To, LogWeight(e.Weight)); err != nil {
			return nil, fmt.Errorf("influence: transform edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return out, nil
}

// LogDistances returns, for every vertex reachable from start, the summed
// −ln(prob) along a minimum-cost path and that path as a vertex sequence.
//
// start maps to distance 0 and path [start]. Unreachable vertices are absent
// from both maps. Distances stay in the additive domain; use PathProbability
// to turn one into the path's probability.
//
// Errors: ErrNilGraph, ErrStartNotFound, ErrBadProbability.
//
// Complexity: O((V + E) log V).
func LogDistances(g *core.Graph, start string) (map[string]float64, map[string][]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	lg, err := LogWeightGraph(g)
	if err != nil {
		return nil, nil, err
	}

	all, prev, err := dijkstra.Dijkstra(lg, dijkstra.Source(start), dijkstra.WithReturnPath())
	if err != nil {
		return nil, nil, fmt.Errorf("influence: shortest paths from %q: %w", start, err)
	}

	dist := make(map[string]float64, len(all))
	for v, d := range all {
		if !math.IsInf(d, 1) {
			dist[v] = d
		}
	}

	return dist, dijkstra.Paths(dist, prev, start), nil
}
