package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cascade/internal/config"
	"github.com/katalvlaran/cascade/internal/logging"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Seed aggregation and most-probable paths on activation graphs",
		Long: `Work with directed graphs whose edges carry independent activation probabilities.

Subcommands:
  aggregate  - Merge the job's seeds into one synthetic seed
  paths      - Most probable paths from a start vertex
  run        - Aggregate, then find paths from the synthetic seed and save distances

Examples:
  cascade aggregate --config job.yaml
  cascade paths --config job.yaml --start 0
  cascade run --config job.yaml --log-json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Config{
				Level:   opts.logLevel,
				JSON:    opts.logJSON,
				Service: "cascade",
			}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "job.yaml", "Path to the YAML job file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")

	cmd.AddCommand(
		newAggregateCmd(opts),
		newPathsCmd(opts),
		newRunCmd(opts),
	)

	return cmd
}

// loadJob reads the job file named by --config.
func (o *rootOptions) loadJob() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("job loaded",
		"path", o.configPath,
		"edges", len(cfg.Edges),
		"seeds", len(cfg.Seeds),
	)
	return cfg, nil
}

// errNoStart is returned by paths when neither --start nor the job names a start vertex.
var errNoStart = errors.New("no start vertex: set --start or 'start' in the job file")
