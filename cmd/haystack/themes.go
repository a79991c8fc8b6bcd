package main

import (
	"fmt"

	"github.com/zweifisch/haystack"
)

// runThemes lists the names accepted by --theme-light and --theme-dark.
func runThemes(args []string, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: themes takes no arguments", ErrUsage)
	}

	names := haystack.ThemeNames()
	fmt.Fprintf(env.Stdout, "Available themes (%d):\n", len(names))
	for _, name := range names {
		marker := ""
		switch name {
		case haystack.DefaultLightTheme:
			marker = " (default light)"
		case haystack.DefaultDarkTheme:
			marker = " (default dark)"
		}
		fmt.Fprintf(env.Stdout, "- %s%s\n", name, marker)
	}
	return nil
}
