package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
)

// CSS returns custom properties carrying each theme's background and
// foreground, consumed by the page stylesheet for code block frames.
func (h *Highlighter) CSS() string {
	lightBg, lightFg := colors(h.light)
	darkBg, darkFg := colors(h.dark)
	return fmt.Sprintf(":root {\n"+
		"  --hl-light-bg: %s;\n"+
		"  --hl-light-fg: %s;\n"+
		"  --hl-dark-bg: %s;\n"+
		"  --hl-dark-fg: %s;\n"+
		"}\n", lightBg, lightFg, darkBg, darkFg)
}

func colors(style *chroma.Style) (bg, fg string) {
	bg, fg = "transparent", "inherit"
	if style == nil {
		return bg, fg
	}
	entry := style.Get(chroma.Background)
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}
	return bg, fg
}
