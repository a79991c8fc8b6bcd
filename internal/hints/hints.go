// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForUnknownTheme suggests close theme names and the listing command.
func ForUnknownTheme(suggestions []string) string {
	hints := make([]string, 0, 2)
	if len(suggestions) > 0 {
		hints = append(hints, "did you mean "+strings.Join(suggestions, ", ")+"?")
	}
	hints = append(hints, "run 'haystack themes' to list available themes")
	return formatHints(hints)
}

// ForSourceMissing points at the flag that sets the source directory.
func ForSourceMissing(dir string) string {
	return format("create " + dir + " or pass --src DIR")
}

// ForConfigNotFound suggests --config and a user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/haystack") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPortInUse suggests another port.
func ForPortInUse(port int) string {
	return format("port " + strconv.Itoa(port) + " is busy; pass --port N to pick another")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetPath explains the expected layout of an asset override directory.
func ForAssetPath() string {
	return format("assets.basePath must be a directory containing styles/base.css and/or templates/page.html")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
