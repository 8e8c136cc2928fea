package genkan

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilConfig = errors.New("configuration cannot be nil")

	// Theme errors, surfaced before any asset work.
	ErrThemeNotFound    = errors.New("theme not found")
	ErrIncompleteTheme  = errors.New("theme missing required file")
	ErrInvalidThemeName = errors.New("invalid theme name")
	ErrInvalidThemesDir = errors.New("invalid themes directory")
	ErrThemeRead        = errors.New("failed to read theme file")
	ErrInvalidTheme     = errors.New("invalid theme template")

	// Asset errors. Unavailable remote assets degrade to placeholders or
	// omission and never abort a build; only undecodable local files do.
	ErrAssetCorrupt = errors.New("corrupt image asset")

	// Render errors.
	ErrRenderFailed = errors.New("page rendering failed")
)

// isError checks if err wraps or equals target using errors.Is semantics.
func isError(err, target error) bool {
	return errors.Is(err, target)
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedInternalError{sentinel: sentinel, original: original}
}

type wrappedInternalError struct {
	sentinel error
	original error
}

func (e *wrappedInternalError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they live in internal/ packages.
func (e *wrappedInternalError) Unwrap() error {
	return e.sentinel
}
