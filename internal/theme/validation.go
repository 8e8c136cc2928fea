package theme

import (
	"fmt"
	"strings"
)

// ValidateThemeName checks that a theme name is safe for use as a directory
// name. Returns ErrInvalidThemeName if the name is empty or contains path
// separators, dots (which could allow traversal), or other escape characters.
func ValidateThemeName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidThemeName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidThemeName, name)
	}
	return nil
}
