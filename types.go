package haystack

import (
	"path/filepath"
	"strings"

	"github.com/zweifisch/haystack/internal/pipeline"
)

// Format classifies a source file by extension.
type Format = pipeline.Format

// Source formats.
const (
	FormatAsset    = pipeline.FormatAsset
	FormatMarkdown = pipeline.FormatMarkdown
	FormatOrg      = pipeline.FormatOrg
)

// DetectFormat classifies path: .md/.markdown are Markdown, .org is Org,
// everything else is an asset. Matching is case-insensitive.
func DetectFormat(path string) Format {
	return pipeline.DetectFormat(path)
}

// Document is one source file to render.
type Document struct {
	Path    string // used for the fallback title and Org #+INCLUDE resolution
	Content []byte
	Format  Format
}

// Fragment is converted body HTML plus the title the document declared.
type Fragment = pipeline.Fragment

// ThemePair names the canonical light and dark chroma styles.
type ThemePair struct {
	Light string
	Dark  string
}

// fallbackTitle derives a page title from the file name.
func fallbackTitle(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "haystack"
	}
	if title := strings.TrimSuffix(base, filepath.Ext(base)); title != "" {
		return title
	}
	return base
}
