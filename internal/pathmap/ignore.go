package pathmap

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Ignore is a compiled set of doublestar globs matched against slash
// separated paths relative to the source root. A nil *Ignore matches nothing.
type Ignore struct {
	patterns []string
}

// NewIgnore validates patterns and returns the set.
func NewIgnore(patterns []string) (*Ignore, error) {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimPrefix(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
		cleaned = append(cleaned, p)
	}
	return &Ignore{patterns: cleaned}, nil
}

// Match reports whether rel, or any of its parent directories, matches a
// pattern. "drafts/**" therefore excludes everything under drafts/ and
// "drafts" excludes the directory itself plus its contents.
func (ig *Ignore) Match(rel string) bool {
	if ig == nil || len(ig.patterns) == 0 {
		return false
	}

	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	for candidate := rel; candidate != "" && candidate != "."; candidate = path.Dir(candidate) {
		for _, p := range ig.patterns {
			// Patterns were validated in NewIgnore.
			if ok, _ := doublestar.Match(p, candidate); ok {
				return true
			}
		}
		if !strings.Contains(candidate, "/") {
			break
		}
	}
	return false
}

// Patterns returns the normalized patterns.
func (ig *Ignore) Patterns() []string {
	if ig == nil {
		return nil
	}
	return append([]string(nil), ig.patterns...)
}
