package pipeline

// AssetKind discriminates embeddable asset representations.
type AssetKind string

const (
	AssetDataURL   AssetKind = "data_url"   // base64 data URL for src/href attributes
	AssetInlineSVG AssetKind = "inline_svg" // sanitized SVG markup, rendered raw
	AssetText      AssetKind = "text"       // literal text (emoji), rendered escaped
)

// Asset is the embeddable result for one request. The zero value means
// "omitted": the asset could not be produced and its slot renders empty.
type Asset struct {
	Kind  AssetKind
	Value string
}

// IsZero reports whether the asset was omitted.
func (a Asset) IsZero() bool {
	return a.Kind == "" && a.Value == ""
}

// placeholderSVG is the built-in glyph substituted for unavailable icons:
// a neutral chain-link symbol, stroked with currentColor so themes tint it.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"/><path d="M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"/></svg>`

// Placeholder returns the built-in substitute asset for icon roles.
func Placeholder() Asset {
	return Asset{Kind: AssetInlineSVG, Value: placeholderSVG}
}
