package pipeline

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-genkan/internal/fileutil"
)

// SourceKind discriminates image reference classifications.
type SourceKind string

const (
	SourceRemote SourceKind = "remote" // fetched over the network
	SourceLocal  SourceKind = "local"  // read from disk
	SourceData   SourceKind = "data"   // already a data URL, passed through
	SourceInline SourceKind = "inline" // literal text (emoji), passed through
)

// Source is one classified image reference. Value holds the normalized URL,
// the resolved filesystem path, the data URL, or the literal text,
// depending on Kind.
type Source struct {
	Kind  SourceKind
	Value string
}

// Classify resolves a raw image reference from the config into a Source.
// Relative paths resolve against baseDir (the config file's directory);
// only paths that exist classify as local; anything unrecognized is
// inline text, covering emoji icons and literal strings.
// Scheme-relative URLs ("//host/path") normalize to https.
func Classify(raw, baseDir string) Source {
	switch {
	case fileutil.IsDataURL(raw):
		return Source{Kind: SourceData, Value: raw}
	case strings.HasPrefix(raw, "//"):
		return Source{Kind: SourceRemote, Value: "https:" + raw}
	case fileutil.IsURL(raw):
		return Source{Kind: SourceRemote, Value: raw}
	}

	path := raw
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	if fileutil.FileExists(path) {
		return Source{Kind: SourceLocal, Value: path}
	}

	return Source{Kind: SourceInline, Value: raw}
}

// Role identifies what an image is used for. The failure policy and the
// SVG handling depend on it.
type Role string

const (
	RoleAvatar     Role = "avatar"
	RoleSocialIcon Role = "social_icon"
	RoleLinkIcon   Role = "link_icon"
	RoleFavicon    Role = "favicon"
	RoleBackground Role = "background_image"
)

// usesPlaceholder reports whether a failed acquisition substitutes the
// built-in glyph. Avatar, favicon, and background images are omitted
// instead.
func (r Role) usesPlaceholder() bool {
	return r == RoleLinkIcon || r == RoleSocialIcon
}

// svgInline reports whether this role embeds SVG as inline markup. Icon
// slots render raw markup so the page's CSS color applies; the other roles
// render through src/href attributes, which take a data URL.
func (r Role) svgInline() bool {
	return r == RoleLinkIcon || r == RoleSocialIcon
}

// Request is one unit of pipeline work.
type Request struct {
	Source Source
	Role   Role

	// TargetSize is the square resize bound in pixels; zero disables
	// resizing for this request.
	TargetSize int
}

// Key identifies identical work: requests with equal keys are processed
// once per build and share one result. The same key addresses the disk
// cache.
func (r Request) Key() string {
	return string(r.Source.Kind) + "|" + r.Source.Value + "|" + string(r.Role) + "|" + strconv.Itoa(r.TargetSize)
}
