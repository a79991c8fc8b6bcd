// Package logger configures log/slog for serve mode.
// Output is human-readable text on the given writer, one line per record.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// LevelFor maps the CLI verbosity flags to a level. quiet wins over verbose.
func LevelFor(quiet, verbose bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
