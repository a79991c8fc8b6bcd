package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
)

// Page is the input to one composition.
type Page struct {
	Title string
	Body  string // converted fragment, trusted HTML
	Head  string // head include, inserted verbatim
}

// pageData is what the page template sees.
type pageData struct {
	Title string
	CSS   template.CSS
	Head  template.HTML
	Body  template.HTML
}

// Composer wraps fragments in a complete, self-contained HTML document.
// The template and stylesheet are parsed once; Compose is safe for
// concurrent use.
type Composer struct {
	tmpl *template.Template
	css  template.CSS
}

// NewComposer parses the page template. styles are concatenated in order
// into the page's single <style> element.
func NewComposer(pageTemplate string, styles ...string) (*Composer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %v", ErrCompose, err)
	}

	var css strings.Builder
	for _, s := range styles {
		if s == "" {
			continue
		}
		css.WriteString(sanitizeCSS(s))
		if !strings.HasSuffix(s, "\n") {
			css.WriteByte('\n')
		}
	}

	return &Composer{
		tmpl: tmpl,
		// #nosec G203 -- stylesheets come from embedded assets or the local asset directory
		css: template.CSS(css.String()),
	}, nil
}

// Compose renders p as a full HTML document.
func (c *Composer) Compose(ctx context.Context, p Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := pageData{
		Title: p.Title,
		CSS:   c.css,
		// #nosec G203 -- fragment and head include come from local trusted sources
		Head: template.HTML(p.Head),
		// #nosec G203 -- same as above
		Body: template.HTML(p.Body),
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompose, err)
	}
	return buf.Bytes(), nil
}

// sanitizeCSS escapes sequences that could close the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
