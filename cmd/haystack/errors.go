package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidPort        = errors.New("invalid port")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrSourceMissing      = errors.New("source directory not found")
	ErrListen             = errors.New("failed to listen")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrCopyAsset          = errors.New("failed to copy asset")
	ErrBuildFailed        = errors.New("build failed")
)
