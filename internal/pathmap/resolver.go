package pathmap

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/zweifisch/haystack/internal/pipeline"
)

// indexName is served for "/" and for any path ending in "/".
const indexName = "index.html"

// Target is a resolved request.
type Target struct {
	Path   string // filesystem path of the source or asset
	Rel    string // slash separated path relative to the root
	Format pipeline.Format
}

// Resolver maps request URL paths to files under a source root.
// Safe for concurrent use.
type Resolver struct {
	root   string
	ignore *Ignore
}

// NewResolver returns a resolver rooted at root. ignore may be nil.
func NewResolver(root string, ignore *Ignore) *Resolver {
	return &Resolver{root: root, ignore: ignore}
}

// Root returns the source root.
func (r *Resolver) Root() string {
	return r.root
}

// ValidatePath rejects request paths that could escape the root.
func ValidatePath(urlPath string) error {
	if strings.ContainsAny(urlPath, "\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, urlPath)
	}
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidPath, urlPath)
		}
	}
	return nil
}

// Resolve maps urlPath (already percent-decoded) to a file:
//
//	/            -> index.{md,markdown,org}
//	/dir/        -> dir/index.{md,markdown,org}
//	/p.html      -> p.md, p.markdown, p.org, then a literal p.html asset
//	/p.ext       -> the asset p.ext
//
// Returns ErrInvalidPath for traversal attempts and ErrNotFound otherwise.
func (r *Resolver) Resolve(urlPath string) (Target, error) {
	if err := ValidatePath(urlPath); err != nil {
		return Target{}, err
	}

	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		rel += indexName
	}
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")

	if r.ignore.Match(rel) {
		return Target{}, fmt.Errorf("%w: %s", ErrNotFound, urlPath)
	}

	if strings.EqualFold(path.Ext(rel), ".html") {
		base := rel[:len(rel)-len(".html")]
		for _, ext := range pipeline.DocumentExtensions {
			candidate := base + ext
			if r.ignore.Match(candidate) {
				continue
			}
			if t, ok := r.regular(candidate); ok {
				return t, nil
			}
		}
	}

	if t, ok := r.regular(rel); ok {
		// A raw source requested by its own name is served as a file.
		t.Format = pipeline.FormatAsset
		return t, nil
	}

	return Target{}, fmt.Errorf("%w: %s", ErrNotFound, urlPath)
}

func (r *Resolver) regular(rel string) (Target, bool) {
	p := filepath.Join(r.root, filepath.FromSlash(rel))
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return Target{}, false
	}
	return Target{Path: p, Rel: rel, Format: pipeline.DetectFormat(rel)}, true
}
