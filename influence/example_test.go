package influence_test

import (
	"fmt"

	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/influence"
)

// ExampleAggregateSeeds merges two seeds that share a target.
func ExampleAggregateSeeds() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "2", 0.5)
	_, _ = g.AddEdge("1", "2", 0.4)
	_, _ = g.AddEdge("0", "3", 0.3)

	merged, s, err := influence.AggregateSeeds(g, []string{"0", "1"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nbs, _ := merged.Neighbors(s)
	for _, e := range nbs {
		fmt.Printf("%s→%s %.2f\n", e.From, e.To, e.Weight)
	}
	fmt.Println(merged.Vertices())
	// Output:
	// s→2 0.70
	// s→3 0.30
	// [2 3 s]
}

// ExampleLogDistances finds most probable paths from vertex "0".
func ExampleLogDistances() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0.2)
	_, _ = g.AddEdge("0", "2", 0.1)
	_, _ = g.AddEdge("1", "2", 0.8)
	_, _ = g.AddEdge("2", "3", 0.1)

	dist, paths, err := influence.LogDistances(g, "0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Printf("%s d=%.4f p=%.3f %v\n", v, dist[v], influence.PathProbability(dist[v]), paths[v])
	}
	// Output:
	// 0 d=0.0000 p=1.000 [0]
	// 1 d=1.6094 p=0.200 [0 1]
	// 2 d=1.8326 p=0.160 [0 1 2]
	// 3 d=4.1352 p=0.016 [0 1 2 3]
}
