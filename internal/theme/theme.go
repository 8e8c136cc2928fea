package theme

// Theme file names within a theme directory.
const (
	TemplateFile = "template.html"
	StyleFile    = "style.css"
	ScriptFile   = "script.js"
)

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "simple"

// Theme holds the loaded contents of one theme: the page template, its
// stylesheet, and an optional script.
type Theme struct {
	Name     string // identifier (directory name)
	Template string // template.html content
	Style    string // style.css content
	Script   string // script.js content, empty when the theme ships none
}

// Loader defines the contract for loading themes by name.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// Load loads a theme by name (the theme's directory name).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrIncompleteTheme if template.html or style.css is missing.
	// Returns ErrInvalidThemeName if the name contains invalid characters.
	Load(name string) (*Theme, error)
}
