package influence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cascade/core"
)

// ValidateProbabilities returns ErrBadProbability, wrapped with the first
// offending edge in ID order, if any edge weight is NaN or outside [0, 1].
//
// Complexity: O(E log E).
func ValidateProbabilities(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	var e *core.Edge
	for _, e = range g.Edges() {
		if !isProbability(e.Weight) {
			return fmt.Errorf("%w: edge %s→%s prob=%g", ErrBadProbability, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// CombineIndependent returns the probability that at least one of several
// independent events occurs: 1 − Π(1 − p). No arguments yields 0.
// Inputs are assumed to lie in [0, 1].
func CombineIndependent(ps ...float64) float64 {
	var r float64
	for _, p := range ps {
		r = orCombine(r, p)
	}

	return r
}

// orCombine folds one more independent event q into the running probability r.
// r + q(1 − r) equals 1 − (1 − r)(1 − q) and returns q exactly when r = 0, so a
// single contributor keeps its original probability bit for bit.
func orCombine(r, q float64) float64 {
	return math.Min(1, r+q*(1-r))
}

// PathProbability converts a log-domain distance back to the probability of
// the corresponding path: exp(−d). +Inf maps to 0.
func PathProbability(distance float64) float64 {
	return math.Exp(-distance)
}

// LogWeight returns the additive cost −ln(p) of an edge with probability p.
// p = 1 costs 0 and p = 0 costs +Inf.
func LogWeight(p float64) float64 {
	// 0 - x keeps +0 (not -0) for certain edges
	return 0 - math.Log(p)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
