package pipeline

// Notes:
// - Assertions target stable markup fragments (wrapper classes, escaped
//   text) rather than full chroma output, which varies with chroma versions.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zweifisch/haystack/internal/highlight"
)

func newTestHighlighter(t *testing.T) *highlight.Highlighter {
	t.Helper()

	hl, err := highlight.New(highlight.DefaultLight, highlight.DefaultDark)
	if err != nil {
		t.Fatalf("highlight.New() error: %v", err)
	}
	return hl
}

// ---------------------------------------------------------------------------
// TestMarkdownConverter_Title
// ---------------------------------------------------------------------------

func TestMarkdownConverter_Title(t *testing.T) {
	t.Parallel()

	c := NewMarkdownConverter(newTestHighlighter(t))

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "first h1", source: "# Hello World\n\ntext\n", want: "Hello World"},
		{name: "emphasis dropped", source: "# Hello *big* `World`\n", want: "Hello big World"},
		{name: "setext h1", source: "Title\n=====\n", want: "Title"},
		{name: "h2 ignored", source: "## Sub\n\n# Main\n", want: "Main"},
		{name: "first of several h1", source: "# One\n\n# Two\n", want: "One"},
		{name: "no heading", source: "just text\n", want: ""},
		{name: "empty document", source: "", want: ""},
		{name: "front matter fallback", source: "---\ntitle: From Meta\n---\nbody\n", want: "From Meta"},
		{name: "heading beats front matter", source: "---\ntitle: Meta\n---\n# Heading\n", want: "Heading"},
		{name: "named entity", source: "# Tom &amp; Jerry\n", want: "Tom & Jerry"},
		{name: "html entity", source: "# Caf&eacute;\n", want: "Café"},
		{name: "numeric reference", source: "# A&#38;B\n", want: "A&B"},
		{name: "backslash escapes", source: "# a\\*b\\*c\n", want: "a*b*c"},
		{name: "code span kept raw", source: "# Use `&amp;`\n", want: "Use &amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frag, err := c.Convert(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if frag.Title != tt.want {
				t.Errorf("Title = %q, want %q", frag.Title, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownConverter_Body
// ---------------------------------------------------------------------------

func TestMarkdownConverter_Body(t *testing.T) {
	t.Parallel()

	c := NewMarkdownConverter(newTestHighlighter(t))

	tests := []struct {
		name         string
		source       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "heading id",
			source:       "# Getting Started\n",
			wantContains: []string{`<h1 id="getting-started">Getting Started</h1>`},
		},
		{
			name:         "gfm table",
			source:       "| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "strikethrough",
			source:       "~~gone~~\n",
			wantContains: []string{"<del>gone</del>"},
		},
		{
			name:         "task list",
			source:       "- [x] done\n",
			wantContains: []string{`type="checkbox"`},
		},
		{
			name:         "footnote",
			source:       "text[^1]\n\n[^1]: note\n",
			wantContains: []string{"footnote"},
		},
		{
			name:         "definition list",
			source:       "Term\n: Definition\n",
			wantContains: []string{"<dl>", "<dt>Term</dt>", "<dd>Definition</dd>"},
		},
		{
			name:         "raw html passes through",
			source:       "<details><summary>More</summary>x</details>\n",
			wantContains: []string{"<details><summary>More</summary>"},
		},
		{
			name:         "fenced code highlighted for both themes",
			source:       "```go\nfunc main() {}\n```\n",
			wantContains: []string{`class="hl hl-light" data-lang="go"`, `class="hl hl-dark" data-lang="go"`, `style="`},
			wantExcludes: []string{"hl-plain", `class="language-go"`},
		},
		{
			name:         "unknown fence language is escaped plain text",
			source:       "```nosuchlang\n<script>alert(1)</script>\n```\n",
			wantContains: []string{`<pre class="hl-plain"><code>&lt;script&gt;alert(1)&lt;/script&gt;`},
			wantExcludes: []string{"<script>alert"},
		},
		{
			name:         "fence without language",
			source:       "```\na < b\n```\n",
			wantContains: []string{`data-lang="text"`, "a &lt; b"},
		},
		{
			name:         "indented code block routed through highlighter",
			source:       "para\n\n    x := 1\n",
			wantContains: []string{`class="hl hl-light"`, "x := 1"},
		},
		{
			name:         "crlf normalized",
			source:       "# Title\r\n\r\ntext\r\n",
			wantContains: []string{"<p>text</p>"},
			wantExcludes: []string{"\r"},
		},
		{
			name:         "front matter stripped",
			source:       "---\ntitle: x\n---\nbody\n",
			wantContains: []string{"<p>body</p>"},
			wantExcludes: []string{"title: x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frag, err := c.Convert(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(frag.HTML, want) {
					t.Errorf("HTML missing %q\ngot: %s", want, frag.HTML)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(frag.HTML, exclude) {
					t.Errorf("HTML should not contain %q\ngot: %s", exclude, frag.HTML)
				}
			}
		})
	}
}

func TestMarkdownConverter_EmptyDocument(t *testing.T) {
	t.Parallel()

	c := NewMarkdownConverter(newTestHighlighter(t))
	frag, err := c.Convert(context.Background(), "")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if frag.HTML != "" || frag.Title != "" {
		t.Errorf("Convert(\"\") = %+v, want empty fragment", frag)
	}
}

func TestMarkdownConverter_Idempotent(t *testing.T) {
	t.Parallel()

	c := NewMarkdownConverter(newTestHighlighter(t))
	source := "# T\n\n```python\nprint('hi')\n```\n\n| a |\n|---|\n| b |\n"

	first, err := c.Convert(context.Background(), source)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := c.Convert(context.Background(), source)
		if err != nil {
			t.Fatalf("Convert() error: %v", err)
		}
		if again != first {
			t.Fatalf("Convert() output differs on run %d", i)
		}
	}
}

func TestMarkdownConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	c := NewMarkdownConverter(newTestHighlighter(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Convert(ctx, "# x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}
