package haystack

import (
	"context"
	"fmt"
	"os"

	"github.com/zweifisch/haystack/internal/assets"
	"github.com/zweifisch/haystack/internal/highlight"
	"github.com/zweifisch/haystack/internal/pipeline"
)

// Engine renders documents to complete HTML pages.
// Create with NewEngine; all methods are safe for concurrent use.
type Engine struct {
	themes   ThemePair
	hl       *highlight.Highlighter
	markdown *pipeline.MarkdownConverter
	org      *pipeline.OrgConverter
	composer *pipeline.Composer
	head     *HeadInclude
}

// NewEngine resolves the theme pair, loads page assets and parses the page
// template. Unknown theme names fail with ErrUnknownTheme; an unusable
// asset directory fails with ErrInvalidAssetPath.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		themes: ThemePair{Light: DefaultLightTheme, Dark: DefaultDarkTheme},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	hl, err := highlight.New(cfg.themes.Light, cfg.themes.Dark)
	if err != nil {
		return nil, err
	}

	loader := cfg.assetLoader
	if loader == nil {
		resolver, err := assets.NewAssetResolver(cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	page, err := assets.LoadPage(loader)
	if err != nil {
		return nil, fmt.Errorf("loading page assets: %w", err)
	}

	composer, err := pipeline.NewComposer(page.Template, page.CSS, hl.CSS())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	return &Engine{
		themes: ThemePair{
			Light: hl.ThemeName(highlight.Light),
			Dark:  hl.ThemeName(highlight.Dark),
		},
		hl:       hl,
		markdown: pipeline.NewMarkdownConverter(hl),
		org:      pipeline.NewOrgConverter(hl),
		composer: composer,
		head:     cfg.head,
	}, nil
}

// Themes returns the resolved theme pair.
func (e *Engine) Themes() ThemePair {
	return e.themes
}

// RenderFile reads path and renders it. The format comes from the extension.
func (e *Engine) RenderFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := Document{Path: path, Format: DetectFormat(path)}
	if !doc.Format.IsDocument() {
		return nil, fmt.Errorf("%w: %s", ErrNotDocument, path)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the source walk or the request resolver
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	doc.Content = content

	return e.Render(ctx, doc)
}

// Render converts doc into a complete HTML page. Malformed content never
// fails; errors come only from cancellation, the head include or the
// page template.
func (e *Engine) Render(ctx context.Context, doc Document) ([]byte, error) {
	frag, err := e.RenderFragment(ctx, doc)
	if err != nil {
		return nil, err
	}

	title := frag.Title
	if title == "" {
		title = fallbackTitle(doc.Path)
	}

	head, err := e.head.Content()
	if err != nil {
		return nil, err
	}

	out, err := e.composer.Compose(ctx, pipeline.Page{
		Title: title,
		Body:  frag.HTML,
		Head:  head,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

// RenderFragment converts doc to body HTML without the page wrapper.
// Fragment.Title is empty when the document declares none.
func (e *Engine) RenderFragment(ctx context.Context, doc Document) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	var (
		frag Fragment
		err  error
	)
	switch doc.Format {
	case FormatMarkdown:
		frag, err = e.markdown.Convert(ctx, string(doc.Content))
	case FormatOrg:
		frag, err = e.org.Convert(ctx, doc.Path, string(doc.Content))
	default:
		return Fragment{}, fmt.Errorf("%w: %s", ErrNotDocument, doc.Path)
	}
	if err != nil {
		return Fragment{}, err
	}

	// A rewrite failure leaves links as written.
	if rewritten, rerr := pipeline.RewriteDocumentLinks(frag.HTML); rerr == nil {
		frag.HTML = rewritten
	}
	return frag, nil
}
