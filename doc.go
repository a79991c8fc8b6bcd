// Package haystack renders Markdown and Org-mode documents into
// self-contained, themed HTML pages.
//
// # Quick Start
//
//	engine, err := haystack.NewEngine(
//	    haystack.WithThemes("github", "monokai"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := engine.RenderFile(ctx, "src/index.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output/index.html", page, 0o644)
//
// # Rendering Pipeline
//
//  1. Format detection by extension (.md/.markdown, .org)
//  2. Markup conversion via goldmark or go-org
//  3. Code highlighting with chroma, once per theme of the light/dark pair
//  4. Relative links to sibling documents rewritten to .html
//  5. Page composition: built-in CSS, theme variables, head include, title
//
// The same Engine backs the batch builder and the HTTP server, so a page is
// byte-identical in both modes. An Engine holds only read-only state after
// NewEngine returns and is safe for concurrent use.
//
// # Themes
//
// Theme names are chroma style names. Resolution is forgiving (case,
// punctuation and a few well-known aliases) but an unknown name is an error
// from NewEngine; nothing is rendered with a half-configured theme pair.
// ThemeNames lists what is available.
//
// # Head Include
//
// An optional HTML snippet is inserted verbatim before </head>. In
// HeadCached mode it is read once; in HeadReload mode it is re-read for
// every page, which lets a running server pick up edits. A missing file
// is treated as empty.
package haystack
