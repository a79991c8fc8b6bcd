package haystack

import "github.com/zweifisch/haystack/internal/assets"

// engineConfig holds construction-time settings for Engine.
type engineConfig struct {
	themes      ThemePair
	head        *HeadInclude
	assetPath   string
	assetLoader assets.AssetLoader
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithThemes sets the light and dark theme names. Empty names keep the
// defaults. Names are resolved by NewEngine.
func WithThemes(light, dark string) Option {
	return func(c *engineConfig) {
		if light != "" {
			c.themes.Light = light
		}
		if dark != "" {
			c.themes.Dark = dark
		}
	}
}

// WithHeadInclude inserts h into every page.
func WithHeadInclude(h *HeadInclude) Option {
	return func(c *engineConfig) {
		c.head = h
	}
}

// WithAssetPath overrides styles/base.css and templates/page.html from a
// directory, falling back to the built-in copy for any file not present.
func WithAssetPath(path string) Option {
	return func(c *engineConfig) {
		c.assetPath = path
	}
}

// withAssetLoader replaces the asset loader entirely. Test hook.
func withAssetLoader(loader assets.AssetLoader) Option {
	return func(c *engineConfig) {
		c.assetLoader = loader
	}
}
