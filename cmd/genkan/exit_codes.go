package main

import (
	"errors"
	"os"

	genkan "github.com/alnah/go-genkan"
	"github.com/alnah/go-genkan/config"
)

// Exit codes for the genkan CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitAsset   = 4 // Corrupt local asset
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Asset errors (exit 4). Only corrupt local files abort a build;
	// unavailable remote assets degrade and never reach here.
	if errors.Is(err, genkan.ErrAssetCorrupt) {
		return ExitAsset
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrNoConfigs) ||
		errors.Is(err, genkan.ErrThemeRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigPath) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInputTooLarge) ||
		errors.Is(err, genkan.ErrNilConfig) ||
		errors.Is(err, genkan.ErrThemeNotFound) ||
		errors.Is(err, genkan.ErrIncompleteTheme) ||
		errors.Is(err, genkan.ErrInvalidThemeName) ||
		errors.Is(err, genkan.ErrInvalidThemesDir) ||
		errors.Is(err, genkan.ErrInvalidTheme) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
