// Package main provides the CLI entrypoint for deepcopy.
//
// deepcopy copies sample object graphs with the copier engine:
//   - demo copies samples on a worker pool and prints whether each copy
//     is a different reference than its source
//   - plan prints the field descriptor table of a sample type
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deepcopier/copier"
	"deepcopier/diagnostic"
	"deepcopier/internal/config"
	"deepcopier/internal/fixture"
	"deepcopier/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "deepcopy",
	Short: "deepcopy - deep copies of Go object graphs",
	Long: `deepcopy drives the copier engine over a set of sample graphs.

Each copy is fully independent of its source: shared references stay shared,
cycles are closed inside the copy and aggregates are rebuilt through their
registered initializers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg = config.Default()
		if configPath != "" {
			if cfg, err = config.LoadFile(configPath); err != nil {
				return err
			}
		}

		diags := config.Validate(cfg)
		if diags.HasErrors() {
			return fmt.Errorf("invalid config: %w", diags.Error())
		}

		if logger, err = logging.New(cfg.Logging, verbose); err != nil {
			return err
		}

		logNotes(logger, diags)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// logNotes reports the informational findings of config validation.
func logNotes(log *zap.Logger, diags *diagnostic.Diagnostics) {
	for _, info := range diags.Infos {
		log.Info(info.Message, zap.String("code", info.Code), zap.String("key", info.Path))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every dispatch at debug level")

	rootCmd.AddCommand(demoCmd, planCmd)
}

// newCopier builds the copier described by the loaded config.
func newCopier() (*copier.Copier, error) {
	reg := copier.NewRegistry()
	if err := fixture.Register(reg); err != nil {
		return nil, err
	}

	return copier.New(
		copier.WithLogger(logger.Named("copier")),
		copier.WithFeatures(cfg.Copy.Features()),
		copier.WithMaxDepth(cfg.Copy.MaxDepth),
		copier.WithRegistry(reg),
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
