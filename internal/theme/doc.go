// Package theme provides the HTML templates, stylesheets, and scripts that
// shape the generated page.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in themes)
//	    ├── FilesystemLoader  - loads from a themes directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in themes compiled into the binary;
// "simple" is the default.
//
// FilesystemLoader allows users to provide their own themes from a
// directory, with path traversal protection and symlink resolution.
//
// Resolver is the primary loader used by the builder. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the theme is
// not found there. A present but incomplete custom theme is an error, not a
// fallback, so authoring mistakes stay visible.
//
// # Directory Structure
//
// A theme is a directory named after the theme:
//
//	{themesDir}/
//	└── {name}/
//	    ├── template.html    # page template (html/template syntax)
//	    ├── style.css        # stylesheet template (text/template syntax)
//	    └── script.js        # optional static script
//
// # Security
//
// Theme names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within the
// themes directory.
package theme
