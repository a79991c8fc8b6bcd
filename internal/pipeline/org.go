package pipeline

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/niklasfasching/go-org/org"

	"github.com/zweifisch/haystack/internal/highlight"
)

// OrgConverter converts Org-mode documents to an HTML fragment with go-org.
// Safe for concurrent use; a fresh writer is created per conversion.
type OrgConverter struct {
	hl     *highlight.Highlighter
	logger *log.Logger
}

// NewOrgConverter creates a converter that routes src blocks through hl.
func NewOrgConverter(hl *highlight.Highlighter) *OrgConverter {
	return &OrgConverter{
		hl:     hl,
		logger: log.New(io.Discard, "", 0),
	}
}

// Convert renders source to a fragment. path is used to resolve #+INCLUDE
// directives. go-org reports errors for the whole document, so a failed
// conversion degrades to the escaped source.
func (c *OrgConverter) Convert(ctx context.Context, path, source string) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	source = normalizeSource(source)

	conf := org.New()
	conf.Log = c.logger
	doc := conf.Parse(strings.NewReader(source), path)
	title := orgTitle(doc)

	w := org.NewHTMLWriter()
	w.HighlightCodeBlock = func(code, lang string, inline bool, _ map[string]string) string {
		if inline {
			return c.hl.Inline(code, lang)
		}
		return c.hl.Block(code, lang)
	}

	out, err := doc.Write(w)
	if err != nil {
		frag := literalFragment(source)
		frag.Title = title
		return frag, nil
	}
	return Fragment{HTML: out, Title: title}, nil
}

// orgTitle returns the first non-empty #+TITLE value, else the text of the
// first headline, else "". Both come from the parsed document, so lines
// inside src or example blocks never count.
func orgTitle(doc *org.Document) string {
	for _, line := range strings.Split(doc.Get("TITLE"), "\n") {
		if v := strings.TrimSpace(line); v != "" {
			return v
		}
	}
	for _, n := range doc.Nodes {
		if h, ok := n.(org.Headline); ok {
			return strings.TrimSpace(orgText(h.Title))
		}
	}
	return ""
}

// orgText flattens inline nodes to plain text, dropping markup.
func orgText(nodes []org.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case org.Text:
			b.WriteString(n.Content)
		case org.Emphasis:
			b.WriteString(orgText(n.Content))
		case org.RegularLink:
			if len(n.Description) > 0 {
				b.WriteString(orgText(n.Description))
			} else {
				b.WriteString(n.URL)
			}
		case org.LineBreak, org.ExplicitLineBreak:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
