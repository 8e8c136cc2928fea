package theme

import (
	"errors"
)

// Resolver combines custom and embedded theme loaders with fallback logic.
// When a custom themes directory is configured, it is tried first; the
// embedded themes serve as fallback when the theme is not found there.
type Resolver struct {
	custom   Loader // nil if no custom directory configured
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver.
// If customDir is empty, only embedded themes are available.
// If customDir is set, its themes take precedence with fallback to embedded.
// Returns an error if customDir is set but invalid.
func NewResolver(customDir string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load loads a theme, trying the custom directory first if configured.
// Only not-found errors fall back to embedded themes; an incomplete custom
// theme surfaces as-is so a half-authored theme is not silently replaced.
func (r *Resolver) Load(name string) (*Theme, error) {
	if r.custom == nil {
		return r.embedded.Load(name)
	}

	theme, err := r.custom.Load(name)
	if err == nil {
		return theme, nil
	}
	if !errors.Is(err, ErrThemeNotFound) {
		return nil, err
	}

	return r.embedded.Load(name)
}

// EmbeddedNames returns the names of the built-in themes.
func (r *Resolver) EmbeddedNames() []string {
	return r.embedded.Names()
}

// HasCustomLoader returns true if a custom themes directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
