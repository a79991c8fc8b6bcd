package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/fileutil"
	"github.com/zweifisch/haystack/internal/hints"
	"github.com/zweifisch/haystack/internal/logger"
	"github.com/zweifisch/haystack/internal/pathmap"
	"github.com/zweifisch/haystack/internal/server"
)

// runServe renders documents on demand until ctx is cancelled.
// The head include is re-read per page so edits show up on reload.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
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
	s, err := serveSettings(flags, cfg)
	if err != nil {
		return err
	}

	ignore, err := pathmap.NewIgnore(s.ignore)
	if err != nil {
		return err
	}

	engine, err := newEngine(s, haystack.HeadReload)
	if err != nil {
		return err
	}

	if !fileutil.DirExists(s.src) {
		return fmt.Errorf("%w: %s%s", ErrSourceMissing, s.src, hints.ForSourceMissing(s.src))
	}

	log := logger.New(env.Stderr, logger.LevelFor(flags.common.quiet, flags.common.verbose))

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	ln, err := env.Listen("tcp", addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %v%s", ErrListen, err, hints.ForPortInUse(s.port))
		}
		return fmt.Errorf("%w: %v", ErrListen, err)
	}

	resolver := pathmap.NewResolver(s.src, ignore)
	themes := engine.Themes()
	log.Debug("serving", "root", resolver.Root(), "light", themes.Light, "dark", themes.Dark,
		"head", s.head, "ignore", ignore.Patterns())

	handler := server.NewHandler(engine, resolver, log)
	srv := server.New(addr, handler, log)
	return server.Serve(ctx, srv, ln, log)
}
