package highlight

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// tabWidth is the number of columns a tab expands to inside code blocks.
const tabWidth = 4

// Variant selects one side of a theme pair.
type Variant int

const (
	Light Variant = iota
	Dark
)

// Variants lists both sides in render order.
var Variants = []Variant{Light, Dark}

// String returns "light" or "dark".
func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// Class returns the wrapper class that the page stylesheet toggles.
func (v Variant) Class() string {
	return "hl-" + v.String()
}

// Highlighter renders code with a resolved light and dark style.
type Highlighter struct {
	lightName string
	darkName  string
	light     *chroma.Style
	dark      *chroma.Style
	formatter *chromahtml.Formatter
}

// New resolves both theme names and returns a Highlighter for the pair.
func New(light, dark string) (*Highlighter, error) {
	lightName, err := Resolve(light)
	if err != nil {
		return nil, fmt.Errorf("light theme: %w", err)
	}
	darkName, err := Resolve(dark)
	if err != nil {
		return nil, fmt.Errorf("dark theme: %w", err)
	}

	return &Highlighter{
		lightName: lightName,
		darkName:  darkName,
		light:     styles.Get(lightName),
		dark:      styles.Get(darkName),
		formatter: chromahtml.New(FormatOptions()...),
	}, nil
}

// FormatOptions returns the chroma HTML options shared by every code path,
// so fenced Markdown blocks and Org source blocks produce the same markup.
func FormatOptions() []chromahtml.Option {
	return []chromahtml.Option{
		chromahtml.WithClasses(false),
		chromahtml.TabWidth(tabWidth),
	}
}

// ThemeName returns the canonical name of the style for v.
func (h *Highlighter) ThemeName(v Variant) string {
	if v == Dark {
		return h.darkName
	}
	return h.lightName
}

// Style returns the chroma style for v.
func (h *Highlighter) Style(v Variant) *chroma.Style {
	if v == Dark {
		return h.dark
	}
	return h.light
}

// Block renders code as both theme variants. An empty or unrecognized
// language yields escaped plain text inside the same wrappers.
func (h *Highlighter) Block(code, lang string) string {
	lexer := Lexer(lang)

	var b strings.Builder
	for _, v := range Variants {
		if lexer == nil {
			WriteOpen(&b, v, lang, false)
			b.WriteString(html.EscapeString(code))
			WriteClose(&b, false)
			continue
		}

		WriteOpen(&b, v, lang, true)
		if err := h.format(&b, lexer, h.Style(v), code); err != nil {
			// Formatting can only fail on the writer or a broken lexer;
			// neither is recoverable so fall back to plain text.
			b.WriteString("<pre class=\"hl-plain\"><code>")
			b.WriteString(html.EscapeString(code))
			b.WriteString("</code></pre>")
		}
		WriteClose(&b, true)
	}
	return b.String()
}

// Inline renders a short snippet as escaped code. Inline spans are not
// tokenized because the surrounding text already carries the page colors.
func (h *Highlighter) Inline(code, lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "<code>" + html.EscapeString(code) + "</code>"
	}
	return "<code data-lang=\"" + html.EscapeString(lang) + "\">" + html.EscapeString(code) + "</code>"
}

func (h *Highlighter) format(w io.Writer, lexer chroma.Lexer, style *chroma.Style, code string) error {
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return err
	}
	return h.formatter.Format(w, style, it)
}

// Lexer returns the chroma lexer registered for lang, or nil.
func Lexer(lang string) chroma.Lexer {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil
	}
	return lexers.Get(lang)
}

// WriteOpen writes the opening wrapper for one variant. When highlighted is
// false it also opens the plain pre/code pair the text goes into.
func WriteOpen(w io.Writer, v Variant, lang string, highlighted bool) {
	label := strings.TrimSpace(lang)
	if label == "" {
		label = "text"
	}
	_, _ = fmt.Fprintf(w, "<div class=\"hl %s\" data-lang=\"%s\">", v.Class(), html.EscapeString(label))
	if !highlighted {
		_, _ = io.WriteString(w, "<pre class=\"hl-plain\"><code>")
	}
}

// WriteClose closes what WriteOpen opened.
func WriteClose(w io.Writer, highlighted bool) {
	if !highlighted {
		_, _ = io.WriteString(w, "</code></pre>")
	}
	_, _ = io.WriteString(w, "</div>\n")
}
