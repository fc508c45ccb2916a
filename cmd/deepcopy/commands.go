package main

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deepcopier/internal/fixture"
	"deepcopier/internal/runner"
)

var (
	sample  string
	workers int
	repeat  int
	dump    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Copy sample graphs on a worker pool",
	Long: `Builds the selected sample graphs, copies each of them --repeat times
on --workers goroutines and prints one identity-divergence line per copy.

Samples: ` + strings.Join(sampleNames(), ", ") + `, all`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var planCmd = &cobra.Command{
	Use:   "plan <sample>",
	Short: "Print the field descriptor table of a sample type",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	demoCmd.Flags().StringVar(&sample, "sample", "all", "sample to copy")
	demoCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (default from config)")
	demoCmd.Flags().IntVar(&repeat, "repeat", 1, "copies per sample")
	demoCmd.Flags().BoolVar(&dump, "dump", false, "dump source and copy with pointer addresses")
}

func sampleNames() []string {
	names := make([]string, 0, len(fixture.Samples))
	for name := range fixture.Samples {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func runDemo(cmd *cobra.Command, _ []string) error {
	names := []string{sample}
	if sample == "all" {
		names = sampleNames()
	}

	var jobs []runner.Job
	for _, name := range names {
		for range max(repeat, 1) {
			src, err := fixture.Sample(name)
			if err != nil {
				return err
			}

			jobs = append(jobs, runner.NewJob(name, src))
		}
	}

	c, err := newCopier()
	if err != nil {
		return err
	}

	if workers <= 0 {
		workers = cfg.Runner.Workers
	}

	results, err := runner.New(c, workers, logger.Named("runner")).Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "%s [%s]: copy is not the same as source: %t\n", res.Job.Name, res.Job.ID, res.Diverged)

		for _, w := range res.Report.Warnings {
			fmt.Fprintf(out, "\twarning: %s\n", w)
		}

		if dump {
			fmt.Fprintf(out, "source:\n%s", spew.Sdump(res.Job.Source))
			fmt.Fprintf(out, "copy:\n%s", spew.Sdump(res.Copy))
		}

		logger.Info("copied",
			zap.String("sample", res.Job.Name),
			zap.Int("visits", res.Report.Stats.Total()),
			zap.Int("cache_hits", res.Report.Stats.CacheHits),
			zap.Int("initializers", res.Report.Stats.Initializers),
			zap.Duration("elapsed", res.Elapsed),
		)
	}

	sum := runner.Summarize(results)
	logger.Info("demo done",
		zap.Int("jobs", len(results)),
		zap.Int("visits", sum.Stats.Total()),
		zap.Int("initializers", sum.Stats.Initializers),
		zap.Int("warnings", len(sum.Warnings)),
		zap.Duration("elapsed", sum.Stats.Elapsed),
	)

	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	src, err := fixture.Sample(args[0])
	if err != nil {
		return err
	}

	t := reflect.TypeOf(src)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}

	c, err := newCopier()
	if err != nil {
		return err
	}

	plan, err := c.Plan(t)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), plan)

	for _, in := range c.Registry().Initializers(t) {
		fmt.Fprintf(cmd.OutOrStdout(), "initializer %s (%d params)\n", in, in.Arity())
	}

	return nil
}
