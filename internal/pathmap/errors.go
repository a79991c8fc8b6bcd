package pathmap

import "errors"

// Sentinel errors for path mapping.
var (
	// ErrInvalidPath indicates a request path with a ".." segment, a
	// backslash or a NUL byte. Such paths are rejected before any
	// filesystem access.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFound indicates no source or asset backs the request.
	ErrNotFound = errors.New("not found")

	// ErrOutsideRoot indicates a source path that is not under the source root.
	ErrOutsideRoot = errors.New("path outside source root")

	// ErrInvalidPattern indicates a malformed ignore glob.
	ErrInvalidPattern = errors.New("invalid ignore pattern")
)
