package theme

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed themes/*
var themes embed.FS

// EmbeddedLoader loads themes compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load loads an embedded theme by name.
func (e *EmbeddedLoader) Load(name string) (*Theme, error) {
	if err := ValidateThemeName(name); err != nil {
		return nil, err
	}

	dir := "themes/" + name
	if _, err := fs.Stat(themes, dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	tmpl, err := themes.ReadFile(dir + "/" + TemplateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTheme, name, TemplateFile)
	}
	style, err := themes.ReadFile(dir + "/" + StyleFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTheme, name, StyleFile)
	}

	theme := &Theme{
		Name:     name,
		Template: string(tmpl),
		Style:    string(style),
	}

	// script.js is optional
	if script, err := themes.ReadFile(dir + "/" + ScriptFile); err == nil {
		theme.Script = string(script)
	}

	return theme, nil
}

// Names returns the names of all embedded themes.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(themes, "themes")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
