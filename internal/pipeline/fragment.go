package pipeline

import (
	"errors"
	"html"
	"strings"
)

// ErrCompose indicates the page template could not be executed.
var ErrCompose = errors.New("page composition failed")

// Fragment is converted document body HTML plus its extracted title.
// An empty Title means the document declared none.
type Fragment struct {
	HTML  string
	Title string
}

// literalFragment renders source as escaped preformatted text, used when a
// converter rejects the content.
func literalFragment(source string) Fragment {
	var b strings.Builder
	b.WriteString("<pre class=\"literal\">")
	b.WriteString(html.EscapeString(source))
	b.WriteString("</pre>\n")
	return Fragment{HTML: b.String()}
}
