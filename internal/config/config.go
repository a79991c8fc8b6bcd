// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/zweifisch/haystack/internal/fileutil"
	"github.com/zweifisch/haystack/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength      = 4096
	MaxThemeNameLength = 100
	MaxHostLength      = 253 // DNS name limit
	MaxIgnorePatterns  = 256
	MaxWorkers         = 32
	MaxPort            = 65535
)

// Default values applied by the CLI when neither a flag nor the config
// file sets a field.
const (
	DefaultSource = "src"
	DefaultOutput = "output"
	DefaultHead   = "theme/head.html"
	DefaultHost   = "0.0.0.0"
	DefaultPort   = 4000
)

// Config mirrors the YAML file. Zero values mean "not set".
type Config struct {
	Source string       `yaml:"source"`
	Output string       `yaml:"output"`
	Head   string       `yaml:"head"`
	Themes ThemesConfig `yaml:"themes"`
	Serve  ServeConfig  `yaml:"serve"`
	Build  BuildConfig  `yaml:"build"`
	Ignore []string     `yaml:"ignore"`
	Assets AssetsConfig `yaml:"assets"`
}

// ThemesConfig names the syntax highlighting theme pair.
type ThemesConfig struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// ServeConfig holds listener settings.
type ServeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BuildConfig holds batch build settings.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto (GOMAXPROCS)
}

// AssetsConfig points at a directory overriding the built-in page assets.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"`
}

// Validate checks field lengths, ranges and ignore glob syntax.
// Exported for callers that construct Config directly.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"source", c.Source, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"head", c.Head, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"themes.light", c.Themes.Light, MaxThemeNameLength},
		{"themes.dark", c.Themes.Dark, MaxThemeNameLength},
		{"serve.host", c.Serve.Host, MaxHostLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Serve.Port < 0 || c.Serve.Port > MaxPort {
		return fmt.Errorf("%w: serve.port must be between 1 and %d, got %d", ErrInvalidValue, MaxPort, c.Serve.Port)
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	if len(c.Ignore) > MaxIgnorePatterns {
		return fmt.Errorf("%w: ignore has %d patterns (max %d)", ErrInvalidValue, len(c.Ignore), MaxIgnorePatterns)
	}
	for i, pattern := range c.Ignore {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: ignore[%d]: bad glob %q", ErrInvalidValue, i, pattern)
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every field falls through
// to the CLI defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a path. Otherwise it is a
// name searched as <name>.yaml/.yml in the working directory, then in the
// user config directory under haystack/. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath treats anything with a separator or a YAML extension as a path.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
// A value that already looks like a path is returned as is.
func SearchPaths(nameOrPath string) []string {
	if isFilePath(nameOrPath) {
		return []string{nameOrPath}
	}

	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, nameOrPath+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "haystack", nameOrPath+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
