// Package highlight renders code blocks as inline-styled HTML using chroma.
//
// Every block is rendered once per theme of the configured pair:
//
//	<div class="hl hl-light" data-lang="go"> ...light tokens... </div>
//	<div class="hl hl-dark" data-lang="go"> ...dark tokens... </div>
//
// The page stylesheet shows exactly one of the two depending on the
// document's data-theme attribute, so switching appearance never needs a
// server round trip. Token colors are inline style attributes; no external
// stylesheet is referenced.
//
// Theme names are resolved against chroma's style registry once, at startup.
// A Highlighter only ever holds resolved styles.
package highlight
