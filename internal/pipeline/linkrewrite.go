package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteDocumentLinks points relative links at sibling documents to their
// rendered .html form, so "guide.md#setup" becomes "guide.html#setup".
//
// Untouched:
//   - links with a scheme (http:, mailto:, ...) or protocol-relative links
//   - pure anchors and empty hrefs
//   - links to assets (anything not ending in a document extension)
func RewriteDocumentLinks(fragment string) (string, error) {
	if !strings.Contains(fragment, "href") {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	if !rewriteLinks(root) {
		return fragment, nil
	}
	return renderFragment(root)
}

// parseFragment parses body-level HTML into a container node.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of a container built by parseFragment.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteLinks walks the tree and reports whether any href changed.
func rewriteLinks(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := documentHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteLinks(c) {
			changed = true
		}
	}
	return changed
}

// documentHref maps a relative document link to its .html target.
func documentHref(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") || hasScheme(href) {
		return "", false
	}

	path, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		path, suffix = href[:i], href[i:]
	}

	lower := strings.ToLower(path)
	for _, ext := range DocumentExtensions {
		if strings.HasSuffix(lower, ext) && len(path) > len(ext) {
			return path[:len(path)-len(ext)] + ".html" + suffix, true
		}
	}
	return "", false
}

// hasScheme reports whether href starts with a URL scheme such as "https:".
func hasScheme(href string) bool {
	for i, r := range href {
		switch {
		case r == ':':
			return i > 0
		case r == '/' || r == '?' || r == '#':
			return false
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && ((r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return false
}
