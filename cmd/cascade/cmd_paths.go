package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/influence"
)

func newPathsCmd(opts *rootOptions) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Most probable paths from a start vertex",
		Long: `Rewrite every edge probability p to the cost -ln(p) and print, for each
reachable vertex, the summed cost, the path probability exp(-cost) and the path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := opts.loadJob()
			if err != nil {
				return err
			}
			if start == "" {
				start = job.Start
			}
			if start == "" {
				return errNoStart
			}
			g, err := job.Graph()
			if err != nil {
				return err
			}
			dist, paths, err := findPaths(opts, g, start)
			if err != nil {
				return err
			}
			printPaths(cmd, g, dist, paths)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Start vertex (defaults to 'start' from the job file)")

	return cmd
}

func findPaths(opts *rootOptions, g *core.Graph, start string) (map[string]float64, map[string][]string, error) {
	dist, paths, err := influence.LogDistances(g, start)
	if err != nil {
		return nil, nil, err
	}
	opts.logger.Info("paths computed",
		"start", start,
		"reachable", len(dist),
		"unreachable", g.VertexCount()-len(dist),
	)
	return dist, paths, nil
}

// printPaths writes one line per reachable vertex in vertex order.
func printPaths(cmd *cobra.Command, g *core.Graph, dist map[string]float64, paths map[string][]string) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-12s %-10s %-10s %s\n", "VERTEX", "DIST", "PROB", "PATH")
	for _, v := range g.Vertices() {
		d, ok := dist[v]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-12s %-10.4f %-10.6f %s\n", v, d, influence.PathProbability(d), strings.Join(paths[v], " -> "))
	}
}
