package dijkstra

import (
	"fmt"
	"math"
)

// PathTo rebuilds the vertex sequence source → … → target from a predecessor
// map returned by Dijkstra with WithReturnPath().
//
// The source maps to the single-element path [source]. A target without a
// predecessor (unreachable or unknown) yields ErrNoPath.
//
// Complexity: O(L) where L is the path length.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == source {
		return []string{source}, nil
	}

	var rev []string
	cur := target
	for cur != source {
		// a valid predecessor chain never revisits a vertex
		if len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle at %q", ErrNoPath, cur)
		}
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, target)
		}
		rev = append(rev, cur)
		cur = p
	}
	rev = append(rev, source)

	// reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Paths rebuilds one shortest path for every vertex with a finite distance.
// Unreachable vertices are absent from the result.
//
// Complexity: O(V·L) in the worst case.
func Paths(dist map[string]float64, prev map[string]string, source string) map[string][]string {
	out := make(map[string][]string, len(dist))
	var v string
	var d float64
	for v, d = range dist {
		if math.IsInf(d, 1) {
			continue
		}
		p, err := PathTo(prev, source, v)
		if err != nil {
			continue
		}
		out[v] = p
	}

	return out
}
