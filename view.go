package genkan

import (
	"html"
	"html/template"

	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/render"
)

// pageLang is the document language attribute. Config has no language
// field; link pages are short enough that a wrong declaration would be
// worse than a constant one.
const pageLang = "en"

// viewPage maps the site model onto the theme's page template data.
// Trust boundaries are crossed here: pipeline-built assets and the
// sanitized bio get template trust types, user CSS goes through the
// style-block escape, and everything else stays a plain string for
// contextual escaping.
func viewPage(m *SiteModel) render.Page {
	page := render.Page{
		Lang:            pageLang,
		Title:           m.Title,
		Description:     m.Description,
		PageURL:         m.PageURL,
		ShareTitle:      m.ShareTitle,
		Name:            m.Name,
		BioHTML:         template.HTML(m.BioHTML), // #nosec G203 -- escaped or Markdown-rendered, never raw input
		Favicon:         assetURL(m.Favicon),
		AvatarLight:     assetURL(m.Light.Avatar),
		AvatarDark:      assetURL(m.Dark.Avatar),
		QRCode:          assetURL(m.QRCode),
		DarkMode:        m.DarkMode,
		DarkModeEnabled: m.DarkMode != "" && m.DarkMode != "disable",
		Analytics:       template.HTML(m.Analytics), // #nosec G203 -- the page owner's own snippet
		CustomCSS:       render.SafeCSS(m.CustomCSS),
		ShowFooter:      m.ShowFooter,
		Updated:         m.Updated,
	}

	for _, social := range m.SocialLinks {
		page.SocialLinks = append(page.SocialLinks, render.SocialLink{
			URL:      social.URL,
			Title:    social.Title,
			IconHTML: iconHTML(social.Icon),
		})
	}

	for _, link := range m.Links {
		page.Links = append(page.Links, render.Link{
			IsSpace:     link.Kind == config.LinkTypeSpace,
			Height:      render.SafeCSS(link.Height),
			URL:         link.URL,
			Title:       link.Title,
			Description: link.Description,
			IconHTML:    iconHTML(link.Icon),
		})
	}

	return page
}

// viewStyles maps the resolved styles onto the stylesheet template data.
func viewStyles(m *SiteModel) render.Styles {
	return render.Styles{
		FontFamily:      m.FontFamily,
		LinkSpacing:     m.LinkSpacing,
		ButtonRadius:    buttonRadius(m.ButtonStyle),
		DarkModeEnabled: m.DarkMode != "" && m.DarkMode != "disable",
		Light:           viewModeStyles(m.Styles.Light, m.Light),
		Dark:            viewModeStyles(m.Styles.Dark, m.Dark),
	}
}

func viewModeStyles(s ModeStyles, a ModeAssets) render.ModeStyles {
	ms := render.ModeStyles{
		Primary:         s.Colors.Primary,
		Secondary:       s.Colors.Secondary,
		Background:      s.Colors.Background,
		BackgroundCSS:   a.Background,
		Default:         viewTypography(s.Default),
		Header:          viewTypography(s.Header),
		Bio:             viewTypography(s.Bio),
		LinkTitle:       viewTypography(s.LinkTitle),
		LinkDescription: viewTypography(s.LinkDescription),
	}
	if a.BackgroundImage != nil {
		ms.BackgroundImage = a.BackgroundImage.Value
	}
	return ms
}

func viewTypography(t ResolvedTypography) render.TypographyCSS {
	return render.TypographyCSS{
		Size:   t.Size,
		Font:   t.Font,
		Weight: t.Weight,
		Style:  t.Style,
		Color:  t.Color,
	}
}

// buttonRadius maps a button style name to its border radius.
func buttonRadius(style string) string {
	switch style {
	case "pill":
		return "9999px"
	case "square":
		return "0"
	default:
		return "12px" // rounded
	}
}

// assetURL types an embedded asset for a src/href slot. Only data URLs
// belong there; anything else renders empty.
func assetURL(a *EmbeddedAsset) template.URL {
	if a == nil || a.Kind != AssetDataURL {
		return ""
	}
	return template.URL(a.Value) // #nosec G203 -- pipeline-built data URL
}

// iconHTML renders an embedded asset into icon-slot markup: inline SVG
// verbatim, data URLs as img elements, literal text escaped.
func iconHTML(a *EmbeddedAsset) template.HTML {
	if a == nil {
		return ""
	}
	switch a.Kind {
	case AssetInlineSVG:
		return template.HTML(a.Value) // #nosec G203 -- sanitized by the asset pipeline
	case AssetDataURL:
		return template.HTML(`<img src="` + a.Value + `" alt="" loading="lazy">`) // #nosec G203 -- src is a pipeline-built data URL
	default:
		return template.HTML(html.EscapeString(a.Value)) // #nosec G203 -- escaped above
	}
}
