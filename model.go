package genkan

// TextDomain identifies one themable text element on the page.
type TextDomain string

// Text domains, in page order.
const (
	DomainHeader          TextDomain = "header"
	DomainBio             TextDomain = "bio"
	DomainLinkTitle       TextDomain = "link_title"
	DomainLinkDescription TextDomain = "link_description"
)

// TextDomains returns every text domain in page order.
func TextDomains() []TextDomain {
	return []TextDomain{DomainHeader, DomainBio, DomainLinkTitle, DomainLinkDescription}
}

// ColorMode selects the light or dark variant of the page.
type ColorMode string

// Color modes.
const (
	ModeLight ColorMode = "light"
	ModeDark  ColorMode = "dark"
)

// ResolvedTypography is one text domain's fully resolved style.
// No field is empty after resolution.
type ResolvedTypography struct {
	Size   string // CSS font-size, e.g. "1.1rem"
	Font   string // CSS font-family stack
	Weight string // CSS font-weight, e.g. "600"
	Style  string // CSS font-style, e.g. "normal"
	Color  string // CSS color
}

// ModeColors holds one mode's resolved page colors.
type ModeColors struct {
	Primary    string
	Secondary  string
	Background string
}

// ModeStyles aggregates one mode's resolved colors and typography.
// Default is the shared base table the stylesheet applies to the body.
type ModeStyles struct {
	Colors          ModeColors
	Default         ResolvedTypography
	Header          ResolvedTypography
	Bio             ResolvedTypography
	LinkTitle       ResolvedTypography
	LinkDescription ResolvedTypography
}

// Domain returns the resolved typography for d.
// Panics on an unknown domain (programmer error).
func (m ModeStyles) Domain(d TextDomain) ResolvedTypography {
	switch d {
	case DomainHeader:
		return m.Header
	case DomainBio:
		return m.Bio
	case DomainLinkTitle:
		return m.LinkTitle
	case DomainLinkDescription:
		return m.LinkDescription
	}
	panic("genkan: unknown text domain: " + string(d))
}

// ResolvedStyles holds both modes' resolved styles.
type ResolvedStyles struct {
	Light ModeStyles
	Dark  ModeStyles
}

// Mode returns the resolved styles for m.
// Panics on an unknown mode (programmer error).
func (s ResolvedStyles) Mode(m ColorMode) ModeStyles {
	switch m {
	case ModeLight:
		return s.Light
	case ModeDark:
		return s.Dark
	}
	panic("genkan: unknown color mode: " + string(m))
}

// AssetKind discriminates embedded asset representations.
type AssetKind string

// Asset kinds.
const (
	AssetDataURL   AssetKind = "data_url"   // base64 data URL for src/href slots
	AssetInlineSVG AssetKind = "inline_svg" // sanitized SVG markup, rendered raw
	AssetText      AssetKind = "text"       // literal text (emoji), rendered escaped
)

// EmbeddedAsset is one self-contained page asset: a base64 data URL, inline
// SVG markup, or literal text such as an emoji. Rendering it never touches
// the network or the filesystem.
type EmbeddedAsset struct {
	Kind  AssetKind
	Value string
}

// LinkEntry is one validated entry from the ordered link list: a clickable
// or static block, or a vertical spacer. Produced by BuildLinks; the icon
// is still the raw config reference at this stage.
type LinkEntry struct {
	Kind        string // config.LinkTypeBlock or config.LinkTypeSpace
	Title       string
	URL         string // empty renders a non-interactive block
	Icon        string // raw image reference; empty suppresses the icon slot
	Description string
	Height      string // spacers only, e.g. "30px"
}

// SiteLink is a link entry with its icon resolved for embedding.
type SiteLink struct {
	Kind        string
	Title       string
	URL         string
	Description string
	Height      string
	Icon        *EmbeddedAsset // nil when unset or omitted
}

// SiteSocialLink is one resolved entry in the social icon row.
type SiteSocialLink struct {
	URL   string
	Title string // accessible label, may be empty
	Icon  *EmbeddedAsset
}

// ModeAssets holds one mode's resolved page imagery.
type ModeAssets struct {
	Avatar          *EmbeddedAsset // nil when unset or omitted
	BackgroundImage *EmbeddedAsset // nil when unset or omitted
	Background      string         // CSS color or gradient, raw from config
}

// SiteModel is the fully resolved input to the renderer: every asset
// embedded, every style populated, all validation done. Read-only once
// assembled; nothing in it requires further network or disk access.
type SiteModel struct {
	Name    string
	BioHTML string // escaped plain text or rendered Markdown

	Light ModeAssets
	Dark  ModeAssets

	SocialLinks []SiteSocialLink
	Links       []SiteLink

	Styles ResolvedStyles

	ButtonStyle string // "rounded", "pill", "square"
	FontFamily  string
	LinkSpacing string
	DarkMode    string // "auto", "light", "dark", "disable"

	Title       string
	Description string
	PageURL     string
	ShareTitle  string
	Favicon     *EmbeddedAsset
	QRCode      *EmbeddedAsset // set iff PageURL is non-empty
	CustomCSS   string
	Analytics   string
	ShowFooter  bool
	Updated     string
}
