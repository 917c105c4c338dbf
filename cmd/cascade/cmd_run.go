package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cascade/store"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Aggregate seeds, find paths from the synthetic seed and save distances",
		Long: `Merge the job's seeds, compute most probable paths from the synthetic seed,
print them, and save the distance vector as .npy in output.dir. The vertex
order of the vector is written next to it as YAML; unreachable vertices hold +Inf.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := opts.loadJob()
			if err != nil {
				return err
			}
			merged, s, err := aggregate(opts, job)
			if err != nil {
				return err
			}
			dist, paths, err := findPaths(opts, merged, s)
			if err != nil {
				return err
			}
			printPaths(cmd, merged, dist, paths)

			order := merged.Vertices()
			path, err := store.SaveArray(job.Output.Dir, job.Output.Distances, store.DistanceVector(dist, order))
			if err != nil {
				return err
			}
			raw, err := yaml.Marshal(order)
			if err != nil {
				return fmt.Errorf("encode vertex order: %w", err)
			}
			orderPath := filepath.Join(job.Output.Dir, job.Output.Order)
			if err = os.WriteFile(orderPath, raw, 0o644); err != nil {
				return fmt.Errorf("write vertex order: %w", err)
			}
			opts.logger.Info("results saved", "distances", path, "order", orderPath)
			return nil
		},
	}
}
