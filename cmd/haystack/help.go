package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: haystack <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render src/ into static HTML under output/")
	fmt.Fprintln(w, "  serve      Render documents on demand over HTTP")
	fmt.Fprintln(w, "  themes     List code highlighting themes")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'haystack help <command>' for details on a specific command.")
}

// printThemeAndSourceFlags prints the flag groups shared by build and serve.
func printThemeAndSourceFlags(w io.Writer) {
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --src <dir>           Source directory (default \"src\")")
	fmt.Fprintln(w, "      --head <file>         Snippet inserted before </head> (default \"theme/head.html\")")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path ($HAYSTACK_CONFIG)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Themes:")
	fmt.Fprintln(w, "      --theme-light <name>  Light code theme (default \"github\")")
	fmt.Fprintln(w, "      --theme-dark <name>   Dark code theme (default \"monokai\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and debug logs")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: haystack build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every .md, .markdown and .org file to .html and copy all other")
	fmt.Fprintln(w, "files unchanged. The directory layout is preserved.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "      --out <dir>           Output directory (default \"output\")")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 32)")
	fmt.Fprintln(w)
	printThemeAndSourceFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: haystack serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the source directory over HTTP. /page.html renders page.md,")
	fmt.Fprintln(w, "page.markdown or page.org on every request; other paths serve files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Listener:")
	fmt.Fprintln(w, "      --host <addr>         Listen address (default \"0.0.0.0\")")
	fmt.Fprintln(w, "      --port <n>            Listen port (default 4000)")
	fmt.Fprintln(w)
	printThemeAndSourceFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: haystack config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration build and serve would use, as YAML.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "themes":
		fmt.Fprintln(env.Stdout, "Usage: haystack themes")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List the names accepted by --theme-light and --theme-dark.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: haystack version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: haystack help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
