package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/fileutil"
	"github.com/zweifisch/haystack/internal/hints"
	"github.com/zweifisch/haystack/internal/pathmap"
)

// runBuild renders every document under the source directory and copies
// every other file, mirroring the tree under the output directory.
// Configuration problems fail before any file is touched.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	s, err := buildSettings(flags, cfg)
	if err != nil {
		return err
	}

	ignore, err := pathmap.NewIgnore(s.ignore)
	if err != nil {
		return err
	}

	engine, err := newEngine(s, haystack.HeadCached)
	if err != nil {
		return err
	}

	if !fileutil.DirExists(s.src) {
		return fmt.Errorf("%w: %s%s", ErrSourceMissing, s.src, hints.ForSourceMissing(s.src))
	}

	sources, err := pathmap.Walk(s.src, ignore, s.out)
	if err != nil {
		return fmt.Errorf("discovering sources: %w", err)
	}

	jobs, skipped, err := pathmap.Plan(s.src, s.out, sources)
	if err != nil {
		return fmt.Errorf("planning build: %w", err)
	}

	if err := os.MkdirAll(s.out, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if flags.common.verbose {
		themes := engine.Themes()
		fmt.Fprintf(env.Stderr, "Building %d file(s) from %s with %d worker(s), themes %s/%s\n",
			len(jobs), s.src, s.workers, themes.Light, themes.Dark)
	}

	start := env.Now()
	results := buildBatch(ctx, engine, jobs, s.workers)

	failed := printResults(results, skipped, flags.common.quiet, flags.common.verbose, env.Stdout, env.Stderr)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Finished in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d file(s) failed", ErrBuildFailed, failed)
	}
	return ctx.Err()
}
