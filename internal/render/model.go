package render

import "html/template"

// Page is the data a theme's page template consumes. Embedded assets and
// pre-sanitized markup carry html/template trust types so they survive
// contextual escaping; plain fields are escaped as usual.
type Page struct {
	Lang        string
	Title       string
	Description string
	PageURL     string
	ShareTitle  string

	Name    string
	BioHTML template.HTML

	Favicon     template.URL
	AvatarLight template.URL
	AvatarDark  template.URL
	QRCode      template.URL

	DarkMode        string // auto, light, dark, or disable
	DarkModeEnabled bool

	SocialLinks []SocialLink
	Links       []Link

	Analytics template.HTML
	CustomCSS template.CSS

	ShowFooter bool
	Updated    string

	// Style and Script are filled in by the Renderer.
	Style  template.CSS
	Script template.JS
}

// SocialLink is one entry in the social icon row.
type SocialLink struct {
	URL      string
	Title    string
	IconHTML template.HTML
}

// Link is one entry in the link list: an anchor card when URL is set,
// a static card when only text is set, or a vertical spacer.
type Link struct {
	IsSpace     bool
	Height      template.CSS
	URL         string
	Title       string
	Description string
	IconHTML    template.HTML
}

// Styles is the data a theme's stylesheet template consumes. All values
// are fully resolved CSS fragments; the renderer interpolates them as-is.
type Styles struct {
	FontFamily      string
	LinkSpacing     string
	ButtonRadius    string
	DarkModeEnabled bool
	Light           ModeStyles
	Dark            ModeStyles
}

// ModeStyles carries the colors and typography for one color mode.
type ModeStyles struct {
	Primary         string
	Secondary       string
	Background      string
	BackgroundImage string // embedded data URL, wins over BackgroundCSS
	BackgroundCSS   string // raw CSS background value such as a gradient

	Default         TypographyCSS
	Header          TypographyCSS
	Bio             TypographyCSS
	LinkTitle       TypographyCSS
	LinkDescription TypographyCSS
}

// TypographyCSS is one text domain's resolved typography.
type TypographyCSS struct {
	Size   string
	Font   string
	Weight string
	Style  string
	Color  string
}
