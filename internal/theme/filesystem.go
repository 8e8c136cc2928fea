package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads themes from a directory on disk, one subdirectory
// per theme. Implements Loader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at the given
// directory. Returns ErrInvalidThemesDir if the path is not a valid,
// readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidThemesDir)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemesDir, err)
	}

	// Resolve symlinks in the base path so containment checks compare
	// real paths.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidThemesDir, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemesDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidThemesDir, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidThemesDir, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// Load loads a theme from {basePath}/{name}/.
func (f *FilesystemLoader) Load(name string) (*Theme, error) {
	if err := ValidateThemeName(name); err != nil {
		return nil, err
	}

	dirPath := filepath.Join(f.basePath, name)
	if err := f.verifyPathContainment(dirPath + string(filepath.Separator)); err != nil {
		return nil, err
	}

	tmplPath := filepath.Join(dirPath, TemplateFile)
	stylePath := filepath.Join(dirPath, StyleFile)

	tmpl, tmplErr := os.ReadFile(tmplPath)     // #nosec G304 -- path validated above
	style, styleErr := os.ReadFile(stylePath) // #nosec G304 -- path validated above

	// If both required files are missing, the theme doesn't exist
	if os.IsNotExist(tmplErr) && os.IsNotExist(styleErr) {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	// Handle read errors (not just not-exist)
	if tmplErr != nil && !os.IsNotExist(tmplErr) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrThemeRead, TemplateFile, tmplErr)
	}
	if styleErr != nil && !os.IsNotExist(styleErr) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrThemeRead, StyleFile, styleErr)
	}

	// If only one required file is missing, the theme is incomplete
	if os.IsNotExist(tmplErr) {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTheme, name, TemplateFile)
	}
	if os.IsNotExist(styleErr) {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTheme, name, StyleFile)
	}

	theme := &Theme{
		Name:     name,
		Template: string(tmpl),
		Style:    string(style),
	}

	script, scriptErr := os.ReadFile(filepath.Join(dirPath, ScriptFile)) // #nosec G304 -- path validated above
	if scriptErr == nil {
		theme.Script = string(script)
	} else if !os.IsNotExist(scriptErr) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrThemeRead, ScriptFile, scriptErr)
	}

	return theme, nil
}

// verifyPathContainment ensures the resolved path is within basePath.
// Prevents path traversal even if name validation is bypassed.
// Resolves symlinks to prevent escape via a symlink pointing outside.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}
	// If EvalSymlinks fails (e.g. the path doesn't exist yet), continue with
	// absPath; the read will fail anyway and the prefix check still runs.

	if !strings.HasPrefix(absPath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes themes directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
