package tidy

import (
	"context"
	"fmt"
	"sync"

	"github.com/zeozeozeo/modtidy/pkg/modfile"
	"golang.org/x/sync/errgroup"
)

// Job is one file for Batch to tidy
type Job struct {
	Input  string
	Output string
}

// Result pairs a job with its report
type Result struct {
	Job    Job
	Report Report
}

// Batch loads, tidies and saves every job, at most jobs files at a time.
// Every module is owned by a single goroutine. The first failure cancels
// the jobs that have not started yet; results come back in job order for
// the jobs that finished.
func Batch(ctx context.Context, store *modfile.Store, list []Job, opts Options, jobs int) ([]Result, error) {
	if jobs < 1 {
		jobs = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var mu sync.Mutex
	done := make([]*Result, len(list))

	for idx, job := range list {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := processFile(store, job, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			done[idx] = &Result{Job: job, Report: report}
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	var results []Result
	for _, r := range done {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, err
}

func processFile(store *modfile.Store, job Job, opts Options) (Report, error) {
	m, err := store.Load(job.Input)
	if err != nil {
		return Report{}, err
	}

	logger := opts.Logger
	if logger != nil {
		opts.Logger = logger.With("file", job.Input)
	}

	report, err := Run(m, opts)
	if err != nil {
		return report, fmt.Errorf("tidy %s: %w", job.Input, err)
	}
	if err := store.Save(m, job.Output); err != nil {
		return report, fmt.Errorf("save %s: %w", job.Output, err)
	}
	if opts.Logger != nil {
		opts.Logger.Info("tidied", "output", job.Output, "patterns", report.PatternsAfter, "saved", report.Saved())
	}
	return report, nil
}
