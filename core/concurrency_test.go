// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every target appears as a neighbor.
func TestConcurrentAddEdge(t *testing.T) {
	g := NewDiamond(t)
	var wg sync.WaitGroup
	errCh := make(chan error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)

	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(VertexX, fmt.Sprintf("V%d", id), WeightHalf)
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
}

// TestConcurrentAtomicEdgeIDs asserts that edge IDs stay unique under contention.
func TestConcurrentAtomicEdgeIDs(t *testing.T) {
	g := NewDiamond(t)
	idCh := make(chan string, NAtomicEdgeIDs)
	var wg sync.WaitGroup
	wg.Add(NAtomicEdgeIDs)

	for i := 0; i < NAtomicEdgeIDs; i++ {
		go func(id int) {
			defer wg.Done()
			eid, err := g.AddEdge(VertexBase, fmt.Sprintf("T%d", id), Weight1)
			if err != nil {
				eid = ""
			}
			idCh <- eid
		}(i)
	}
	wg.Wait()
	close(idCh)

	seen := make(map[string]struct{}, NAtomicEdgeIDs)
	for eid := range idCh {
		require.NotEmpty(t, eid)
		seen[eid] = struct{}{}
	}
	require.Len(t, seen, NAtomicEdgeIDs)
}

// TestConcurrentMutateAndRead mixes RemoveVertex, AddEdge and readers to
// surface races under -race.
func TestConcurrentMutateAndRead(t *testing.T) {
	g := NewDiamond(t)
	var wg sync.WaitGroup
	wg.Add(NConcurrentRounds + NReaders)

	for i := 0; i < NConcurrentRounds; i++ {
		go func(id int) {
			defer wg.Done()
			v := fmt.Sprintf("R%d", id)
			_, _ = g.AddEdge(VertexBase, v, Weight1)
			_ = g.RemoveVertex(v)
		}(i)
	}
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Vertices()
			_ = g.Clone()
			_, _ = g.EdgeBetween(VertexA, VertexB)
		}()
	}
	wg.Wait()

	require.True(t, g.HasEdge(VertexA, VertexB))
	require.Equal(t, 4, g.EdgeCount(), "only the diamond edges remain")
}
