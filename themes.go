package haystack

import (
	"github.com/zweifisch/haystack/internal/highlight"
)

// Default theme names.
const (
	DefaultLightTheme = highlight.DefaultLight
	DefaultDarkTheme  = highlight.DefaultDark
)

// ThemeNames returns every available theme name, sorted case-insensitively.
func ThemeNames() []string {
	return highlight.Names()
}

// ResolveThemePair canonicalizes both names. Empty names select the
// defaults. The error wraps ErrUnknownTheme and names the failing side.
func ResolveThemePair(light, dark string) (ThemePair, error) {
	if light == "" {
		light = DefaultLightTheme
	}
	if dark == "" {
		dark = DefaultDarkTheme
	}

	hl, err := highlight.New(light, dark)
	if err != nil {
		return ThemePair{}, err
	}
	return ThemePair{Light: hl.ThemeName(highlight.Light), Dark: hl.ThemeName(highlight.Dark)}, nil
}

// SuggestThemes returns up to three available names close to name.
func SuggestThemes(name string) []string {
	return highlight.Suggest(name)
}
