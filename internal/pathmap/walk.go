package pathmap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Walk lists every regular file under root, skipping ignored paths and the
// directories in exclude (typically an output directory nested inside the
// source tree). Results are sorted.
func Walk(root string, ignore *Ignore, exclude ...string) ([]string, error) {
	skip := make(map[string]bool, len(exclude))
	for _, dir := range exclude {
		if abs, err := filepath.Abs(dir); err == nil {
			skip[abs] = true
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("%w: %v", ErrOutsideRoot, relErr)
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if abs, err := filepath.Abs(path); err == nil && skip[abs] {
				return filepath.SkipDir
			}
			if ignore.Match(filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || ignore.Match(filepath.ToSlash(rel)) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
