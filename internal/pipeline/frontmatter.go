package pipeline

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// frontMatter holds the metadata keys the renderer understands.
// Unknown keys are ignored.
type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// splitFrontMatter separates a leading front matter block from the body.
// Sources without a block, or with one that fails to parse, are returned
// whole with an empty title.
func splitFrontMatter(source string) (body string, title string) {
	if !strings.HasPrefix(source, "---") && !strings.HasPrefix(source, "+++") {
		return source, ""
	}

	var meta frontMatter
	rest, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return source, ""
	}
	return string(rest), strings.TrimSpace(meta.Title)
}
