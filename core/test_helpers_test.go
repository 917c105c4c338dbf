// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cascade/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"

	VertexBase = "Base"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0    = 0.0
	WeightHalf = 0.5
	Weight1    = 1.0
	Weight2    = 2.0
)

// Common concurrency sizes used across core tests.
const (
	NAtomicEdgeIDs    = 100
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// NewDiamond RETURNS the directed diamond A→B, A→C, B→D, C→D with distinct weights.
func NewDiamond(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	MustAddEdge(t, g, VertexA, VertexB, 0.1)
	MustAddEdge(t, g, VertexA, VertexC, 0.2)
	MustAddEdge(t, g, VertexB, VertexD, 0.3)
	MustAddEdge(t, g, VertexC, VertexD, 0.4)

	return g
}

// MustAddEdge FAILS the test if AddEdge returns an error.
func MustAddEdge(t *testing.T, g *core.Graph, from, to string, w float64) string {
	t.Helper()

	eid, err := g.AddEdge(from, to, w)
	if err != nil {
		t.Fatalf("AddEdge(%s,%s,%v): unexpected error: %v", from, to, w, err)
	}

	return eid
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}
