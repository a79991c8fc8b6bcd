package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/config"
	"github.com/zweifisch/haystack/internal/pathmap"
	"github.com/zweifisch/haystack/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML: the config file
// merged with defaults, theme names canonicalized, ignore globs normalized.
func runConfig(args []string, env *Environment) error {
	var common commonFlags
	fs := newFlagSet("config", env.Stderr, printConfigUsage)
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return parseError(err)
	}

	cfg, err := loadConfig(common.config, env)
	if err != nil {
		return err
	}

	built, err := buildSettings(&buildFlags{}, cfg)
	if err != nil {
		return err
	}
	served, err := serveSettings(&serveFlags{}, cfg)
	if err != nil {
		return err
	}
	themes, err := haystack.ResolveThemePair(built.light, built.dark)
	if err != nil {
		return err
	}
	ignore, err := pathmap.NewIgnore(cfg.Ignore)
	if err != nil {
		return err
	}

	effective := config.Config{
		Source: built.src,
		Output: built.out,
		Head:   built.head,
		Themes: config.ThemesConfig{Light: themes.Light, Dark: themes.Dark},
		Serve:  config.ServeConfig{Host: served.host, Port: served.port},
		Build:  config.BuildConfig{Workers: built.workers},
		Ignore: ignore.Patterns(),
		Assets: cfg.Assets,
	}

	out, err := yamlutil.Marshal(&effective)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
