package theme

import "errors"

// Sentinel errors for theme operations.
var (
	// ErrThemeNotFound indicates the requested theme does not exist.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrIncompleteTheme indicates the theme directory is missing a required file.
	ErrIncompleteTheme = errors.New("theme missing required file")

	// ErrInvalidThemeName indicates the theme name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidThemeName = errors.New("invalid theme name")

	// ErrInvalidThemesDir indicates the configured themes directory is not a
	// valid, readable directory.
	ErrInvalidThemesDir = errors.New("invalid themes directory")

	// ErrThemeRead indicates an I/O error occurred while reading a theme file.
	ErrThemeRead = errors.New("failed to read theme file")

	// ErrPathTraversal indicates an attempt to access files outside the themes directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
