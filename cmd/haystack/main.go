package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	setMaxProcs(args, env)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run executes the command named by args[1].
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build":
		return runBuild(ctx, rest, env)
	case "serve":
		return runServe(ctx, rest, env)
	case "themes":
		return runThemes(rest, env)
	case "config":
		return runConfig(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "haystack %s (%s/%s, %s)\n", Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

// setMaxProcs configures GOMAXPROCS from the container CPU quota, logging
// the decision only with --verbose.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(args []string, env *Environment) {
	if hasVerbose(args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", a...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerbose scans raw args before any FlagSet runs.
func hasVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
