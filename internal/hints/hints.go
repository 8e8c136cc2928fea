// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests the init scaffold and the --config flag.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "run `genkan init` to scaffold a config, or use --config /path/to/config.toml"
	if len(searchedPaths) > 0 {
		hint += " (searched: " + strings.Join(searchedPaths, ", ") + ")"
	}
	return format(hint)
}

// ForThemeNotFound returns hints for theme not found errors.
// Lists the available built-in themes.
func ForThemeNotFound(available []string) string {
	hints := []string{"place custom themes under themes/<name>/"}
	if len(available) > 0 {
		hints = append(hints, "built-in: "+strings.Join(available, ", "))
	}
	return formatHints(hints)
}

// ForIncompleteTheme returns hints for themes missing required files.
func ForIncompleteTheme() string {
	return format("a theme needs template.html and style.css (script.js is optional)")
}

// ForAssetFetch returns hints for remote asset fetch failures.
func ForAssetFetch() string {
	return format("check the URL, use a local file, or build with --offline to skip network work")
}

// ForCorruptAsset returns hints for local image files that do not decode.
func ForCorruptAsset() string {
	return format("replace the image with a valid PNG, JPEG, GIF, WebP, or SVG file")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
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
