// Package influence works on directed graphs whose edge Weight is an
// independent activation probability in [0, 1] (independent-cascade model).
//
// Two operations are provided; they share no state and compose at the call site:
//
//   - AggregateSeeds collapses a seed set S into one synthetic seed s. For every
//     remaining vertex v the new edge s→v carries
//
//     p_sv = 1 − Π_{u∈S, u→v∈E} (1 − p_uv)
//
//     the probability that at least one seed activates v. Edges with p_sv = 0 are
//     omitted, seeds are removed and all other edges are kept unchanged. The
//     input graph is never mutated.
//
//   - LogDistances rewrites every edge with p > 0 to the cost −ln(p), drops p = 0
//     edges, and runs Dijkstra from start. A distance d corresponds to the most
//     probable path, whose probability is exp(−d) (see PathProbability).
//
// Typical use:
//
//	merged, s, err := influence.AggregateSeeds(g, []string{"0", "1"})
//	if err != nil { ... }
//	dist, paths, err := influence.LogDistances(merged, s)
//
// All failures are caller input errors reported synchronously via the
// sentinel errors below; check them with errors.Is.
package influence
