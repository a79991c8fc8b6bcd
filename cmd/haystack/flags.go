package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// themeFlags selects the highlighting theme pair.
type themeFlags struct {
	light string
	dark  string
}

// sourceFlags locates the inputs.
type sourceFlags struct {
	src  string
	head string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	themes  themeFlags
	source  sourceFlags
	out     string
	workers int
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	themes themeFlags
	source sourceFlags
	host   string
	port   int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug logs")
}

// addThemeFlags adds theme flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.light, "theme-light", "", "light code theme (default \"github\")")
	fs.StringVar(&f.dark, "theme-dark", "", "dark code theme (default \"monokai\")")
}

// addSourceFlags adds input location flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVar(&f.src, "src", "", "source directory (default \"src\")")
	fs.StringVar(&f.head, "head", "", "HTML snippet inserted before </head> (default \"theme/head.html\")")
}

// newFlagSet creates a FlagSet whose parse errors and usage go to stderr.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", stderr, printBuildUsage)

	fs.StringVar(&f.out, "out", "", "output directory (default \"output\")")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addSourceFlags(fs, &f.source)
	addThemeFlags(fs, &f.themes)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", stderr, printServeUsage)

	fs.StringVar(&f.host, "host", "", "listen address (default \"0.0.0.0\")")
	fs.IntVar(&f.port, "port", 0, "listen port (default 4000)")
	addSourceFlags(fs, &f.source)
	addThemeFlags(fs, &f.themes)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseError keeps flag.ErrHelp recognizable and marks everything else as
// a usage error.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
