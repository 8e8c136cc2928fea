package config

import (
	"errors"
	"strings"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInputTooLarge   = errors.New("config exceeds maximum size")
)

// Field length limits for multi-tenant safety.
const (
	MaxNameLength        = 100       // Profile name
	MaxBioLength         = 1000      // Profile bio (multi-sentence)
	MaxURLLength         = 2048      // Browser limit
	MaxTitleLength       = 200       // Page and link titles
	MaxDescriptionLength = 500       // Meta and link descriptions
	MaxIconLength        = 2048      // URL, path, or emoji passthrough
	MaxColorLength       = 50        // "#rrggbb" or "rgba(0, 0, 0, 0.7)"
	MaxFontLength        = 200       // Font family stack
	MaxSizeLength        = 20        // "24px", "1.1rem", "700"
	MaxHeightLength      = 20        // Spacer height
	MaxUpdatedLength     = 100       // Literal date or "auto:FORMAT"
	MaxSnippetLength     = 10 * 1024 // Custom CSS / analytics snippets
)

// Defaults applied by ApplyDefaults when a field is unset.
const (
	DefaultThemeName   = "simple"
	DefaultButtonStyle = "rounded"
	DefaultFontFamily  = "system-ui, -apple-system, sans-serif"
	DefaultLinkSpacing = "24px"
	DefaultDarkMode    = "disable"

	DefaultAvatarSize     = 512
	DefaultSocialIconSize = 128
	DefaultLinkIconSize   = 128
	DefaultFaviconSize    = 64
)

// Link entry kinds.
const (
	LinkTypeBlock = "block"
	LinkTypeSpace = "space"
)

// Config is the root configuration for one link page.
type Config struct {
	Profile  Profile       `toml:"profile" yaml:"profile"`
	Theme    Theme         `toml:"theme" yaml:"theme"`
	Meta     Meta          `toml:"meta" yaml:"meta"`
	Links    []Link        `toml:"links" yaml:"links"`
	DarkMode DarkMode      `toml:"dark_mode" yaml:"dark_mode"`
	Image    ImageSettings `toml:"image" yaml:"image"`

	// BaseDir is the directory containing the loaded config file; relative
	// asset paths resolve against it. Set by Load. Empty for hand-built
	// configs, which resolve against the working directory.
	BaseDir string `toml:"-" yaml:"-"`
}

// Profile describes the page owner.
type Profile struct {
	Name        string        `toml:"name" yaml:"name"`
	Bio         string        `toml:"bio" yaml:"bio"`
	BioMarkdown bool          `toml:"bio_markdown" yaml:"bio_markdown"` // Render bio as Markdown
	SocialLinks []SocialLink  `toml:"social_links" yaml:"social_links"`
	Light       ProfileAssets `toml:"light" yaml:"light"`
	Dark        ProfileAssets `toml:"dark" yaml:"dark"`
}

// ProfileAssets holds per-mode profile imagery.
type ProfileAssets struct {
	Avatar          string `toml:"avatar" yaml:"avatar"`                     // URL, local path, or data URL
	Background      string `toml:"background" yaml:"background"`             // CSS color or gradient
	BackgroundImage string `toml:"background_image" yaml:"background_image"` // URL or local path
}

// SocialLink is one icon-only entry in the social row.
type SocialLink struct {
	Icon  string `toml:"icon" yaml:"icon"`
	URL   string `toml:"url" yaml:"url"`
	Title string `toml:"title" yaml:"title"` // Accessible label, optional
}

// Theme selects and parameterizes the page theme.
type Theme struct {
	Name        string      `toml:"name" yaml:"name"`
	ButtonStyle string      `toml:"button_style" yaml:"button_style"` // "rounded", "pill", "square"
	FontFamily  string      `toml:"font_family" yaml:"font_family"`
	LinkSpacing string      `toml:"link_spacing" yaml:"link_spacing"`
	Typography  Typography  `toml:"typography" yaml:"typography"`
	Light       ThemeColors `toml:"light" yaml:"light"`
	Dark        ThemeColors `toml:"dark" yaml:"dark"`
}

// ThemeColors holds one mode's color overrides. All fields are optional;
// nil means unset, letting the resolver fall through to the next tier.
// The per-domain *Color fields are the legacy flat form kept for older
// configs; theme.typography is the modern equivalent.
type ThemeColors struct {
	PrimaryColor         *string `toml:"primary_color" yaml:"primary_color"`
	SecondaryColor       *string `toml:"secondary_color" yaml:"secondary_color"`
	BackgroundColor      *string `toml:"background_color" yaml:"background_color"`
	HeaderColor          *string `toml:"header_color" yaml:"header_color"`
	BioColor             *string `toml:"bio_color" yaml:"bio_color"`
	LinkTitleColor       *string `toml:"link_title_color" yaml:"link_title_color"`
	LinkDescriptionColor *string `toml:"link_description_color" yaml:"link_description_color"`
}

// Typography holds the per-domain style tables plus the shared default table.
type Typography struct {
	Default         TypographyStyle `toml:"default" yaml:"default"`
	Header          TypographyStyle `toml:"header" yaml:"header"`
	Bio             TypographyStyle `toml:"bio" yaml:"bio"`
	LinkTitle       TypographyStyle `toml:"link_title" yaml:"link_title"`
	LinkDescription TypographyStyle `toml:"link_description" yaml:"link_description"`
}

// TypographyStyle is one table of optional style fields. The *Dark fields
// override their counterparts in dark mode.
type TypographyStyle struct {
	Size   *string `toml:"size" yaml:"size"`
	Font   *string `toml:"font" yaml:"font"`
	Weight *string `toml:"weight" yaml:"weight"`
	Style  *string `toml:"style" yaml:"style"`
	Color  *string `toml:"color" yaml:"color"`

	SizeDark   *string `toml:"size_dark" yaml:"size_dark"`
	FontDark   *string `toml:"font_dark" yaml:"font_dark"`
	WeightDark *string `toml:"weight_dark" yaml:"weight_dark"`
	StyleDark  *string `toml:"style_dark" yaml:"style_dark"`
	ColorDark  *string `toml:"color_dark" yaml:"color_dark"`
}

// DarkMode controls the page's mode selection behavior at view time.
type DarkMode struct {
	Mode string `toml:"mode" yaml:"mode"` // "auto", "light", "dark", "disable"
}

// ImageSettings holds the square target size per image role, in pixels.
// Zero means "use default".
type ImageSettings struct {
	AvatarSize     int `toml:"avatar_size" yaml:"avatar_size"`
	SocialIconSize int `toml:"social_icon_size" yaml:"social_icon_size"`
	LinkIconSize   int `toml:"link_icon_size" yaml:"link_icon_size"`
	FaviconSize    int `toml:"favicon_size" yaml:"favicon_size"`
}

// Meta holds page metadata.
type Meta struct {
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	PageURL     string `toml:"page_url" yaml:"page_url"` // Also drives the share QR code
	Favicon     string `toml:"favicon" yaml:"favicon"`
	CustomCSS   string `toml:"custom_css" yaml:"custom_css"`
	Analytics   string `toml:"analytics" yaml:"analytics"`
	ShowFooter  *bool  `toml:"show_footer" yaml:"show_footer"` // nil = true
	ShareTitle  string `toml:"share_title" yaml:"share_title"`
	Updated     string `toml:"updated" yaml:"updated"` // Literal text, "auto", or "auto:FORMAT"
}

// FooterEnabled reports whether the footer should render.
// Defaults to true when show_footer is absent.
func (m *Meta) FooterEnabled() bool {
	if m == nil || m.ShowFooter == nil {
		return true
	}
	return *m.ShowFooter
}

// Link is one entry in the ordered link list.
type Link struct {
	Title       string `toml:"title" yaml:"title"`
	URL         string `toml:"url" yaml:"url"`
	Icon        string `toml:"icon" yaml:"icon"`
	Description string `toml:"description" yaml:"description"`
	LinkType    string `toml:"link_type" yaml:"link_type"` // "block" (default) or "space"
	Height      string `toml:"height" yaml:"height"`       // Space entries only, e.g. "30px"
}

// Type returns the normalized link type, defaulting to block.
func (l *Link) Type() string {
	if l == nil || l.LinkType == "" {
		return LinkTypeBlock
	}
	return strings.ToLower(l.LinkType)
}

// DefaultConfig returns an empty configuration with defaults applied.
// Callers must still fill in the profile and at least one link.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their documented defaults.
// Load calls this automatically; hand-built configs should call it
// before use.
func (c *Config) ApplyDefaults() {
	if c == nil {
		return
	}
	if c.Theme.Name == "" {
		c.Theme.Name = DefaultThemeName
	}
	if c.Theme.ButtonStyle == "" {
		c.Theme.ButtonStyle = DefaultButtonStyle
	}
	if c.Theme.FontFamily == "" {
		c.Theme.FontFamily = DefaultFontFamily
	}
	if c.Theme.LinkSpacing == "" {
		c.Theme.LinkSpacing = DefaultLinkSpacing
	}
	if c.DarkMode.Mode == "" {
		c.DarkMode.Mode = DefaultDarkMode
	}
	if c.Image.AvatarSize == 0 {
		c.Image.AvatarSize = DefaultAvatarSize
	}
	if c.Image.SocialIconSize == 0 {
		c.Image.SocialIconSize = DefaultSocialIconSize
	}
	if c.Image.LinkIconSize == 0 {
		c.Image.LinkIconSize = DefaultLinkIconSize
	}
	if c.Image.FaviconSize == 0 {
		c.Image.FaviconSize = DefaultFaviconSize
	}
}
