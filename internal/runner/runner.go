// Package runner copies sample graphs on a bounded pool of worker goroutines.
package runner

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"deepcopier/copier"
	"deepcopier/diagnostic"
)

// Job is one graph to copy.
type Job struct {
	ID     string
	Name   string
	Source any
}

// NewJob creates a job with a fresh ID.
func NewJob(name string, source any) Job {
	return Job{ID: uuid.NewString(), Name: name, Source: source}
}

// Result is the outcome of one job.
type Result struct {
	Job    Job
	Copy   any
	Report diagnostic.Report
	// Diverged reports whether the copy is a different reference than the
	// source. Values without identity always diverge.
	Diverged bool
	Elapsed  time.Duration
}

// Runner executes jobs with a shared copier.
type Runner struct {
	copier  *copier.Copier
	workers int
	logger  *zap.Logger
}

// New creates a runner that runs at most workers jobs at once.
func New(c *copier.Copier, workers int, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{copier: c, workers: max(workers, 1), logger: logger}
}

// Run copies every job and returns the results in job order. The first
// failing job cancels the jobs that have not started yet.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, job := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			res, err := r.runJob(job)
			if err != nil {
				return fmt.Errorf("job %s (%s): %w", job.Name, job.ID, err)
			}

			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) runJob(job Job) (Result, error) {
	log := r.logger.With(zap.String("job", job.ID), zap.String("sample", job.Name))
	log.Debug("job started")

	start := time.Now()

	out, report, err := r.copier.CopyValue(reflect.ValueOf(job.Source))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Job:      job,
		Report:   report,
		Diverged: diverged(job.Source, out),
		Elapsed:  time.Since(start),
	}

	if out.IsValid() {
		res.Copy = out.Interface()
	}

	log.Debug("job finished",
		zap.Bool("diverged", res.Diverged),
		zap.Int("warnings", len(report.Warnings)),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// Summarize merges the reports of every result into one: diagnostics are
// concatenated in job order, counters are added up and MaxDepth is the
// deepest of all.
func Summarize(results []Result) diagnostic.Report {
	var sum diagnostic.Report

	for _, res := range results {
		sum.Merge(res.Report.Diagnostics)

		st := res.Report.Stats
		for i, n := range st.Visits {
			sum.Stats.Visits[i] += n
		}
		sum.Stats.CacheHits += st.CacheHits
		sum.Stats.CacheSize += st.CacheSize
		sum.Stats.Initializers += st.Initializers
		sum.Stats.MaxDepth = max(sum.Stats.MaxDepth, st.MaxDepth)
		sum.Stats.Elapsed += st.Elapsed
	}

	return sum
}

// diverged compares the references of src and its copy.
func diverged(src any, out reflect.Value) bool {
	in := reflect.ValueOf(src)
	if !in.IsValid() || !out.IsValid() {
		return in.IsValid() != out.IsValid()
	}

	switch in.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		return in.Pointer() != out.Pointer()
	default:
		return true
	}
}
