package pipeline

import (
	"path/filepath"
	"strings"
)

// Format classifies a source file.
type Format int

const (
	// FormatAsset is any file copied or served byte-for-byte.
	FormatAsset Format = iota
	FormatMarkdown
	FormatOrg
)

// String returns a short lowercase name for the format.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatOrg:
		return "org"
	default:
		return "asset"
	}
}

// IsDocument reports whether files of this format are rendered to HTML.
func (f Format) IsDocument() bool {
	return f == FormatMarkdown || f == FormatOrg
}

// DocumentExtensions lists rendered extensions in collision precedence order.
var DocumentExtensions = []string{".md", ".markdown", ".org"}

// DetectFormat classifies path by its extension, case-insensitively.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".org":
		return FormatOrg
	default:
		return FormatAsset
	}
}
