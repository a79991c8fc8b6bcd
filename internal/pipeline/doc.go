// Package pipeline turns source documents into composed HTML pages.
//
// The stages, in order:
//   - Format detection by file extension (Markdown, Org, or asset)
//   - Preprocessing (line-ending normalization, front matter split)
//   - Markup conversion via goldmark or go-org, with every code block
//     routed through the highlight package
//   - Cross-document link rewriting (.md/.markdown/.org -> .html)
//   - Page composition with the built-in stylesheet, theme variables
//     and an optional head include
//
// Each stage is a plain value built once and safe for concurrent use.
// Nothing here touches the filesystem except through the caller.
package pipeline
