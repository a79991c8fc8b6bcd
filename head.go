package haystack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// HeadMode controls when the head include is read.
type HeadMode int

const (
	// HeadCached reads the file once, when the include is loaded.
	HeadCached HeadMode = iota
	// HeadReload re-reads the file on every page composition.
	HeadReload
)

// HeadInclude is an optional raw HTML snippet inserted before </head>.
// A nil *HeadInclude is valid and contributes nothing.
type HeadInclude struct {
	path   string
	mode   HeadMode
	cached string
}

// LoadHeadInclude prepares the include at path. In HeadCached mode the file
// is read immediately. A missing file is not an error.
func LoadHeadInclude(path string, mode HeadMode) (*HeadInclude, error) {
	h := &HeadInclude{path: path, mode: mode}
	if mode == HeadCached {
		content, err := readHead(path)
		if err != nil {
			return nil, err
		}
		h.cached = content
	}
	return h, nil
}

// Content returns the snippet for the next page.
func (h *HeadInclude) Content() (string, error) {
	if h == nil || h.path == "" {
		return "", nil
	}
	if h.mode == HeadCached {
		return h.cached, nil
	}
	return readHead(h.path)
}

func readHead(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- head include path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrReadHead, err)
	}
	return string(data), nil
}
