package pathmap

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zweifisch/haystack/internal/pipeline"
)

// Job is one unit of build work.
type Job struct {
	Source string // absolute or root-relative source path
	Target string // destination under the output root
	Format pipeline.Format
}

// Skipped records a source dropped because another source maps to the
// same target with higher precedence.
type Skipped struct {
	Source     string
	ShadowedBy string
}

// OutputPath maps srcPath under srcRoot to its build target under outRoot.
// Documents get a .html extension; assets keep their relative path.
func OutputPath(srcRoot, outRoot, srcPath string) (string, error) {
	rel, err := filepath.Rel(srcRoot, srcPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutsideRoot, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, srcPath)
	}

	if pipeline.DetectFormat(rel).IsDocument() {
		rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	}
	return filepath.Join(outRoot, rel), nil
}

// precedence ranks sources competing for one target; lower wins.
func precedence(path string) int {
	ext := strings.ToLower(filepath.Ext(path))
	for i, docExt := range pipeline.DocumentExtensions {
		if ext == docExt {
			return i
		}
	}
	return len(pipeline.DocumentExtensions)
}

// Plan maps every source to a job. When several sources share a target the
// one with the highest precedence (.md, .markdown, .org, then assets) is
// kept and the rest are returned as skipped. Jobs are sorted by source.
func Plan(srcRoot, outRoot string, sources []string) ([]Job, []Skipped, error) {
	winners := make(map[string]Job, len(sources))
	var skipped []Skipped

	for _, src := range sources {
		target, err := OutputPath(srcRoot, outRoot, src)
		if err != nil {
			return nil, nil, err
		}
		job := Job{Source: src, Target: target, Format: pipeline.DetectFormat(src)}

		key := targetKey(target)
		current, exists := winners[key]
		if !exists {
			winners[key] = job
			continue
		}

		if beats(job.Source, current.Source) {
			skipped = append(skipped, Skipped{Source: current.Source, ShadowedBy: job.Source})
			winners[key] = job
		} else {
			skipped = append(skipped, Skipped{Source: job.Source, ShadowedBy: current.Source})
		}
	}

	jobs := make([]Job, 0, len(winners))
	for _, job := range winners {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Source < jobs[j].Source })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Source < skipped[j].Source })

	return jobs, skipped, nil
}

// beats reports whether a should replace b for the same target. Ties in
// extension rank (only possible on case-insensitive collisions) go to the
// lexically smaller path so the result never depends on walk order.
func beats(a, b string) bool {
	pa, pb := precedence(a), precedence(b)
	if pa != pb {
		return pa < pb
	}
	return a < b
}

// targetKey normalizes a target for collision detection.
func targetKey(target string) string {
	return filepath.Clean(target)
}
