package main

import (
	"errors"
	"os"

	"github.com/zweifisch/haystack"
	"github.com/zweifisch/haystack/internal/config"
	"github.com/zweifisch/haystack/internal/pathmap"
)

// Exit codes for the haystack CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Build or serve finished cleanly
	ExitGeneral = 1 // General error, including builds with failed files
	ExitUsage   = 2 // Invalid flags, config, or theme
	ExitIO      = 3 // Source directory missing, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidPort) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, haystack.ErrUnknownTheme) ||
		errors.Is(err, haystack.ErrInvalidAssetPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pathmap.ErrInvalidPattern) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrSourceMissing) ||
		errors.Is(err, ErrListen) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, haystack.ErrReadHead) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
