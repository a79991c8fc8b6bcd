package pipeline

import (
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/zweifisch/haystack/internal/highlight"
)

// codeRendererPriority places the dual renderer ahead of goldmark's default
// HTML renderer (priority 1000) so it owns both code block kinds.
const codeRendererPriority = 100

// funcCapture records the render funcs a NodeRenderer registers so they can
// be called from another renderer.
type funcCapture map[ast.NodeKind]renderer.NodeRendererFunc

func (c funcCapture) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	c[kind] = fn
}

// codeBlockRenderer renders every fenced block once per theme variant using
// one goldmark-highlighting renderer per style, and sends indented blocks
// straight to the highlighter.
type codeBlockRenderer struct {
	hl     *highlight.Highlighter
	fenced []renderer.NodeRendererFunc
}

func newCodeBlockRenderer(hl *highlight.Highlighter) *codeBlockRenderer {
	r := &codeBlockRenderer{hl: hl}
	for _, v := range highlight.Variants {
		variant := v
		nr := highlighting.NewHTMLRenderer(
			highlighting.WithCustomStyle(hl.Style(variant)),
			highlighting.WithFormatOptions(highlight.FormatOptions()...),
			highlighting.WithWrapperRenderer(func(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
				if entering {
					lang, _ := c.Language()
					highlight.WriteOpen(w, variant, string(lang), c.Highlighted())
					return
				}
				highlight.WriteClose(w, c.Highlighted())
			}),
		)

		funcs := funcCapture{}
		nr.RegisterFuncs(funcs)
		if fn, ok := funcs[ast.KindFencedCodeBlock]; ok {
			r.fenced = append(r.fenced, fn)
		}
	}
	return r
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	for _, fn := range r.fenced {
		if _, err := fn(w, source, n, true); err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkSkipChildren, nil
}

func (r *codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(r.hl.Block(blockText(n, source), ""))
	return ast.WalkSkipChildren, nil
}

// blockText joins the raw lines of a block node.
func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// Compile-time interface check.
var _ renderer.NodeRenderer = (*codeBlockRenderer)(nil)
