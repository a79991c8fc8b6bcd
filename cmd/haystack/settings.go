package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/config"
	"github.com/zweifisch/haystack/internal/hints"
)

// envConfigPath names a config file when --config is not given.
const envConfigPath = "HAYSTACK_CONFIG"

// settings is the merged view of flags, config file and defaults.
// Precedence: CLI flag > config file > built-in default.
type settings struct {
	src       string
	out       string
	head      string
	light     string
	dark      string
	workers   int
	host      string
	port      int
	ignore    []string
	assetPath string
}

// loadConfig loads the config named by the flag or HAYSTACK_CONFIG.
// Neither set means an empty config.
func loadConfig(flagValue string, env *Environment) (*config.Config, error) {
	name := flagValue
	if name == "" && env.Getenv != nil {
		name = env.Getenv(envConfigPath)
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// baseSettings merges the fields shared by build and serve.
func baseSettings(themes themeFlags, source sourceFlags, cfg *config.Config) settings {
	return settings{
		src:       firstNonEmpty(source.src, cfg.Source, config.DefaultSource),
		head:      firstNonEmpty(source.head, cfg.Head, config.DefaultHead),
		light:     firstNonEmpty(themes.light, cfg.Themes.Light),
		dark:      firstNonEmpty(themes.dark, cfg.Themes.Dark),
		ignore:    cfg.Ignore,
		assetPath: cfg.Assets.BasePath,
	}
}

// buildSettings merges build flags into cfg.
func buildSettings(f *buildFlags, cfg *config.Config) (settings, error) {
	s := baseSettings(f.themes, f.source, cfg)
	s.out = firstNonEmpty(f.out, cfg.Output, config.DefaultOutput)

	workers := f.workers
	if workers == 0 {
		workers = cfg.Build.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return settings{}, err
	}
	s.workers = resolveWorkers(workers)
	return s, nil
}

// serveSettings merges serve flags into cfg.
func serveSettings(f *serveFlags, cfg *config.Config) (settings, error) {
	s := baseSettings(f.themes, f.source, cfg)
	s.host = firstNonEmpty(f.host, cfg.Serve.Host, config.DefaultHost)

	port := f.port
	if port == 0 {
		port = cfg.Serve.Port
	}
	if port == 0 {
		port = config.DefaultPort
	}
	if port < 1 || port > config.MaxPort {
		return settings{}, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidPort, port, config.MaxPort)
	}
	s.port = port
	return s, nil
}

// validateWorkers rejects counts outside [0, MaxWorkers].
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers turns 0 into GOMAXPROCS, clamped to [1, MaxWorkers].
func resolveWorkers(n int) int {
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, config.MaxWorkers))
}

// engineOptions turns settings into engine options. head may be nil.
func engineOptions(s settings, head *haystack.HeadInclude) []haystack.Option {
	opts := []haystack.Option{haystack.WithThemes(s.light, s.dark)}
	if head != nil {
		opts = append(opts, haystack.WithHeadInclude(head))
	}
	if s.assetPath != "" {
		opts = append(opts, haystack.WithAssetPath(s.assetPath))
	}
	return opts
}

// newEngine builds the engine and decorates configuration errors with hints.
func newEngine(s settings, mode haystack.HeadMode) (*haystack.Engine, error) {
	head, err := haystack.LoadHeadInclude(s.head, mode)
	if err != nil {
		return nil, err
	}

	engine, err := haystack.NewEngine(engineOptions(s, head)...)
	if err != nil {
		switch {
		case errors.Is(err, haystack.ErrUnknownTheme):
			return nil, fmt.Errorf("%w%s", err, hints.ForUnknownTheme(suggestionsFor(s)))
		case errors.Is(err, haystack.ErrInvalidAssetPath):
			return nil, fmt.Errorf("%w%s", err, hints.ForAssetPath())
		}
		return nil, err
	}
	return engine, nil
}

// suggestionsFor finds close names for whichever side of the pair failed.
func suggestionsFor(s settings) []string {
	if s.light != "" {
		if _, lerr := haystack.ResolveThemePair(s.light, ""); lerr != nil {
			return haystack.SuggestThemes(s.light)
		}
	}
	if s.dark != "" {
		return haystack.SuggestThemes(s.dark)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
