package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Generate link pages from configs")
	fmt.Fprintln(w, "  init        Scaffold a new project")
	fmt.Fprintln(w, "  validate    Check a config without building")
	fmt.Fprintln(w, "  watch       Rebuild on config or theme changes")
	fmt.Fprintln(w, "  doctor      Diagnose the environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'genkan help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan build [paths...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one self-contained HTML page per config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  paths    Config files or directories (default: discover in current directory)")
	fmt.Fprintln(w, "           Directories are scanned for .toml files, non-recursively.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (single config) or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --theme <name>        Theme name (overrides config)")
	fmt.Fprintln(w, "      --themes-dir <dir>    Custom themes directory (default: ./themes if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --cache-dir <dir>     Asset cache directory (default: user cache)")
	fmt.Fprintln(w, "      --no-cache            Disable the asset cache")
	fmt.Fprintln(w, "      --offline             Skip network fetches; degrade to placeholders")
	fmt.Fprintln(w, "      --timeout <d>         Remote fetch timeout (e.g., 10s, 1m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug detail and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GENKAN_CONFIG, GENKAN_THEME, GENKAN_THEMES_DIR, GENKAN_OUTPUT,")
	fmt.Fprintln(w, "  GENKAN_CACHE_DIR, GENKAN_TIMEOUT, GENKAN_WORKERS, GENKAN_OFFLINE")
	fmt.Fprintln(w, "  (flags take precedence over environment variables)")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scaffold a new project: config.toml, themes/, and output/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Project directory (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --force    Overwrite an existing config file")
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan validate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check a config without building: parsing, field validation, link")
	fmt.Fprintln(w, "rules, theme resolution, and template parsing. No network access.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path (default: discover in current directory)")
	fmt.Fprintln(w, "      --theme <name>        Theme name (overrides config)")
	fmt.Fprintln(w, "      --themes-dir <dir>    Custom themes directory")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug detail")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan watch [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rebuild the page whenever the config or theme files change.")
	fmt.Fprintln(w, "Press Ctrl+C to stop.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --addr <addr>         Serve the output directory (e.g., :8080)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "      --theme <name>        Theme name (overrides config)")
	fmt.Fprintln(w, "      --themes-dir <dir>    Custom themes directory")
	fmt.Fprintln(w, "      --cache-dir <dir>     Asset cache directory")
	fmt.Fprintln(w, "      --no-cache            Disable the asset cache")
	fmt.Fprintln(w, "      --offline             Skip network fetches")
	fmt.Fprintln(w, "      --timeout <d>         Remote fetch timeout")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug detail and timing")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnose the environment: config discovery, theme resolution,")
	fmt.Fprintln(w, "cache and temp writability, and network reachability.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json       Output diagnostics as JSON")
	fmt.Fprintln(w, "      --offline    Skip the network reachability check")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "validate":
		printValidateUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: genkan version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: genkan help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
