package haystack

import (
	"errors"

	"github.com/zweifisch/haystack/internal/highlight"
)

// Sentinel errors for library operations.
var (
	// ErrUnknownTheme indicates a theme name that matches no chroma style.
	ErrUnknownTheme = highlight.ErrUnknownTheme

	// ErrInvalidAssetPath indicates the asset override directory is unusable.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrReadSource indicates a source document could not be read.
	ErrReadSource = errors.New("failed to read source")

	// ErrReadHead indicates the head include exists but could not be read.
	ErrReadHead = errors.New("failed to read head include")

	// ErrNotDocument indicates a render request for an asset.
	ErrNotDocument = errors.New("not a document")

	// ErrRender indicates page composition failed.
	ErrRender = errors.New("render failed")
)
