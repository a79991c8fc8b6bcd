package pipeline

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/zweifisch/haystack/internal/highlight"
)

// MarkdownConverter converts Markdown to an HTML fragment with goldmark.
// Safe for concurrent use.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates a converter with GFM extensions, footnotes,
// definition lists and dual-theme code highlighting.
func NewMarkdownConverter(hl *highlight.Highlighter) *MarkdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,            // Tables, strikethrough, autolinks, task lists
			extension.Footnote,       // [^1] footnotes
			extension.DefinitionList, // Term / : definition
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Sources are local and trusted; raw HTML passes through.
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeBlockRenderer(hl), codeRendererPriority),
			),
		),
	)
	return &MarkdownConverter{md: md}
}

// Convert renders source to a fragment. The title is the text of the first
// level-1 heading, falling back to a front matter title.
func (c *MarkdownConverter) Convert(ctx context.Context, source string) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	body, metaTitle := splitFrontMatter(normalizeSource(source))
	src := []byte(body)

	doc := c.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, src, doc); err != nil {
		frag := literalFragment(body)
		frag.Title = metaTitle
		return frag, nil
	}

	title := firstHeading(doc, src)
	if title == "" {
		title = metaTitle
	}
	return Fragment{HTML: buf.String(), Title: title}, nil
}

// firstHeading returns the plain text of the first level-1 heading.
func firstHeading(doc ast.Node, source []byte) string {
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(inlineText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// inlineText concatenates the text leaves under n, dropping markup.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			value := node.Segment.Value(source)
			if !node.IsRaw() {
				value = decodeText(value)
			}
			b.Write(value)
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(source))
		case *ast.RawHTML:
			// Inline tags contribute no text.
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return b.String()
}

// decodeText resolves backslash escapes and character references the way
// goldmark's HTML writer does before escaping.
func decodeText(value []byte) []byte {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	return util.ResolveEntityNames(value)
}
