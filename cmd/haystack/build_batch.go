package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/fileutil"
	"github.com/zweifisch/haystack/internal/pathmap"
)

// Renderer is the part of the engine the build needs.
type Renderer interface {
	RenderFile(ctx context.Context, path string) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*haystack.Engine)(nil)

// BuildResult holds the outcome of a single job.
type BuildResult struct {
	Source   string
	Target   string
	Format   haystack.Format
	Err      error
	Duration time.Duration
}

// buildBatch runs jobs on at most workers goroutines. Results are indexed
// like jobs. A failed job never stops the others; once ctx is done,
// unscheduled jobs report ctx.Err().
func buildBatch(ctx context.Context, r Renderer, jobs []pathmap.Job, workers int) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]BuildResult, len(jobs))
	var g errgroup.Group
	g.SetLimit(max(1, workers))

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			results[i] = BuildResult{Source: job.Source, Target: job.Target, Format: job.Format, Err: err}
			continue
		}
		g.Go(func() error {
			results[i] = buildJob(ctx, r, job)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// buildJob renders a document or copies an asset.
func buildJob(ctx context.Context, r Renderer, job pathmap.Job) BuildResult {
	start := time.Now()
	result := BuildResult{Source: job.Source, Target: job.Target, Format: job.Format}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	if !job.Format.IsDocument() {
		if err := fileutil.CopyFile(job.Source, job.Target); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrCopyAsset, err)
		}
		result.Duration = time.Since(start)
		return result
	}

	page, err := r.RenderFile(ctx, job.Source)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFile(job.Target, page); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed jobs.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed jobs.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per job and a summary, returning the
// number of failures. Failures always go to stderr, even with quiet.
func printResults(results []BuildResult, skipped []pathmap.Skipped, quiet, verbose bool, stdout, stderr io.Writer) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.Source, r.Err)
			continue
		}

		if quiet {
			continue
		}

		verb := "Built"
		if !r.Format.IsDocument() {
			verb = "Copied"
		}
		if verbose {
			fmt.Fprintf(stdout, "%s %s -> %s (%v)\n", verb, r.Source, r.Target, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "%s %s -> %s\n", verb, r.Source, r.Target)
		}
	}

	if !quiet {
		for _, s := range skipped {
			fmt.Fprintf(stdout, "Skipped %s (shadowed by %s)\n", s.Source, s.ShadowedBy)
		}
		fmt.Fprintf(stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
