package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/niklasfasching/go-org/org"
)

func TestOrgTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "title keyword", source: "#+TITLE: My Notes\n* Heading\n", want: "My Notes"},
		{name: "lowercase key", source: "#+title: lower\n", want: "lower"},
		{name: "title after headline still wins", source: "* First\n#+TITLE: Late\n", want: "Late"},
		{name: "first headline", source: "#+AUTHOR: x\n\n* Intro\n** Sub\n", want: "Intro"},
		{name: "nested headline first", source: "** Deep\n* Top\n", want: "Deep"},
		{name: "empty title skipped", source: "#+TITLE:   \n* Fallback\n", want: "Fallback"},
		{name: "bold text is not a headline", source: "*bold* text\n", want: ""},
		{name: "stars only", source: "***\n", want: ""},
		{name: "nothing", source: "plain paragraph\n", want: ""},
		{name: "empty", source: "", want: ""},
		{name: "headline inside src block", source: "#+BEGIN_SRC markdown\n* bullet in code\n#+END_SRC\n* Real Heading\n", want: "Real Heading"},
		{name: "title inside example block", source: "#+BEGIN_EXAMPLE\n#+TITLE: fake\n#+END_EXAMPLE\n* Real\n", want: "Real"},
		{name: "headline markup dropped", source: "* First /it/ and *bold*\n", want: "First it and bold"},
		{name: "headline link description", source: "* See [[https://example.com][the site]]\n", want: "See the site"},
		{name: "todo keyword and tags excluded", source: "* TODO Ship it :work:\n", want: "Ship it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := org.New().Parse(strings.NewReader(tt.source), "doc.org")
			if got := orgTitle(doc); got != tt.want {
				t.Errorf("orgTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrgConverter_Convert(t *testing.T) {
	t.Parallel()

	c := NewOrgConverter(newTestHighlighter(t))

	tests := []struct {
		name         string
		source       string
		wantTitle    string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "headline and paragraph",
			source:       "* Intro\nSome text.\n",
			wantTitle:    "Intro",
			wantContains: []string{"Intro", "Some text."},
		},
		{
			name:      "src block highlighted for both themes",
			source:    "#+TITLE: Code\n#+BEGIN_SRC go\nfunc main() {}\n#+END_SRC\n",
			wantTitle: "Code",
			wantContains: []string{
				`class="hl hl-light" data-lang="go"`,
				`class="hl hl-dark" data-lang="go"`,
				`style="`,
			},
		},
		{
			name:         "unknown src language escaped",
			source:       "#+BEGIN_SRC nosuchlang\n<b>x</b>\n#+END_SRC\n",
			wantContains: []string{`<pre class="hl-plain"><code>&lt;b&gt;x&lt;/b&gt;`},
			wantExcludes: []string{"<b>x</b>"},
		},
		{
			name:         "crlf normalized",
			source:       "* A\r\ntext\r\n",
			wantTitle:    "A",
			wantExcludes: []string{"\r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frag, err := c.Convert(context.Background(), "doc.org", tt.source)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if frag.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", frag.Title, tt.wantTitle)
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

func TestOrgConverter_EmptyDocument(t *testing.T) {
	t.Parallel()

	c := NewOrgConverter(newTestHighlighter(t))
	frag, err := c.Convert(context.Background(), "empty.org", "")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if frag.Title != "" {
		t.Errorf("Title = %q, want empty", frag.Title)
	}
	if strings.TrimSpace(frag.HTML) != "" {
		t.Errorf("HTML = %q, want empty", frag.HTML)
	}
}

func TestLiteralFragment(t *testing.T) {
	t.Parallel()

	frag := literalFragment("<x> & y")
	want := "<pre class=\"literal\">&lt;x&gt; &amp; y</pre>\n"
	if frag.HTML != want {
		t.Errorf("literalFragment() = %q, want %q", frag.HTML, want)
	}
}
