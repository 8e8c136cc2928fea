package genkan

import "github.com/alnah/go-genkan/config"

// builtinColors are the page colors used when a mode's theme table sets none.
var builtinColors = ModeColors{
	Primary:    "#000000",
	Secondary:  "#000000",
	Background: "#ffffff",
}

// builtinTypography returns the built-in style table for d. The default
// table is the final fallback for the shared base style; each domain table
// is the final fallback for that domain.
func builtinTypography(d TextDomain) ResolvedTypography {
	switch d {
	case DomainHeader:
		return ResolvedTypography{Size: "2rem", Font: config.DefaultFontFamily, Weight: "700", Style: "normal", Color: "#000000"}
	case DomainBio:
		return ResolvedTypography{Size: "1.1rem", Font: config.DefaultFontFamily, Weight: "normal", Style: "normal", Color: "rgba(0, 0, 0, 0.7)"}
	case DomainLinkTitle:
		return ResolvedTypography{Size: "1.1rem", Font: config.DefaultFontFamily, Weight: "600", Style: "normal", Color: "#000000"}
	case DomainLinkDescription:
		return ResolvedTypography{Size: "0.9rem", Font: config.DefaultFontFamily, Weight: "normal", Style: "normal", Color: "rgba(0, 0, 0, 0.6)"}
	}
	panic("genkan: unknown text domain: " + string(d))
}

// builtinDefaultTable is the built-in shared base style.
func builtinDefaultTable() ResolvedTypography {
	return ResolvedTypography{Size: "16px", Font: config.DefaultFontFamily, Weight: "normal", Style: "normal", Color: "#000000"}
}

// ResolveStyles resolves the typography of every text domain and the page
// colors for both modes. Resolution is per field, first defined value wins:
//
//  1. the domain's own typography table
//  2. the mode's legacy flat color (color field only)
//  3. the shared typography.default table
//  4. the built-in default for the domain
//
// Dark mode reads the _dark variant at each tier and finally falls back to
// the resolved light value, so an unconfigured dark mode mirrors light.
// Empty strings count as unset at every tier.
func ResolveStyles(t config.Theme) ResolvedStyles {
	light := ModeStyles{
		Colors:          resolveColors(t.Light, builtinColors),
		Default:         resolveDefaultLight(t.Typography.Default),
		Header:          resolveDomainLight(t, DomainHeader),
		Bio:             resolveDomainLight(t, DomainBio),
		LinkTitle:       resolveDomainLight(t, DomainLinkTitle),
		LinkDescription: resolveDomainLight(t, DomainLinkDescription),
	}
	dark := ModeStyles{
		Colors:          resolveColors(t.Dark, light.Colors),
		Default:         resolveDefaultDark(t.Typography.Default, light.Default),
		Header:          resolveDomainDark(t, DomainHeader, light.Header),
		Bio:             resolveDomainDark(t, DomainBio, light.Bio),
		LinkTitle:       resolveDomainDark(t, DomainLinkTitle, light.LinkTitle),
		LinkDescription: resolveDomainDark(t, DomainLinkDescription, light.LinkDescription),
	}
	return ResolvedStyles{Light: light, Dark: dark}
}

// firstSet returns the first non-nil, non-empty candidate, or fallback.
func firstSet(fallback string, candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return fallback
}

// resolveColors fills one mode's page colors from its theme table, falling
// back to base. Light resolves against the built-ins; dark resolves against
// the resolved light colors.
func resolveColors(tc config.ThemeColors, base ModeColors) ModeColors {
	return ModeColors{
		Primary:    firstSet(base.Primary, tc.PrimaryColor),
		Secondary:  firstSet(base.Secondary, tc.SecondaryColor),
		Background: firstSet(base.Background, tc.BackgroundColor),
	}
}

func resolveDefaultLight(def config.TypographyStyle) ResolvedTypography {
	base := builtinDefaultTable()
	return ResolvedTypography{
		Size:   firstSet(base.Size, def.Size),
		Font:   firstSet(base.Font, def.Font),
		Weight: firstSet(base.Weight, def.Weight),
		Style:  firstSet(base.Style, def.Style),
		Color:  firstSet(base.Color, def.Color),
	}
}

func resolveDefaultDark(def config.TypographyStyle, light ResolvedTypography) ResolvedTypography {
	return ResolvedTypography{
		Size:   firstSet(light.Size, def.SizeDark),
		Font:   firstSet(light.Font, def.FontDark),
		Weight: firstSet(light.Weight, def.WeightDark),
		Style:  firstSet(light.Style, def.StyleDark),
		Color:  firstSet(light.Color, def.ColorDark),
	}
}

func resolveDomainLight(t config.Theme, d TextDomain) ResolvedTypography {
	table := domainTable(t.Typography, d)
	def := t.Typography.Default
	base := builtinTypography(d)
	return ResolvedTypography{
		Size:   firstSet(base.Size, table.Size, def.Size),
		Font:   firstSet(base.Font, table.Font, def.Font),
		Weight: firstSet(base.Weight, table.Weight, def.Weight),
		Style:  firstSet(base.Style, table.Style, def.Style),
		Color:  firstSet(base.Color, table.Color, legacyColor(t.Light, d), def.Color),
	}
}

func resolveDomainDark(t config.Theme, d TextDomain, light ResolvedTypography) ResolvedTypography {
	table := domainTable(t.Typography, d)
	def := t.Typography.Default
	return ResolvedTypography{
		Size:   firstSet(light.Size, table.SizeDark, def.SizeDark),
		Font:   firstSet(light.Font, table.FontDark, def.FontDark),
		Weight: firstSet(light.Weight, table.WeightDark, def.WeightDark),
		Style:  firstSet(light.Style, table.StyleDark, def.StyleDark),
		Color:  firstSet(light.Color, table.ColorDark, legacyColor(t.Dark, d), def.ColorDark),
	}
}

// domainTable returns the typography table for d.
func domainTable(typ config.Typography, d TextDomain) config.TypographyStyle {
	switch d {
	case DomainHeader:
		return typ.Header
	case DomainBio:
		return typ.Bio
	case DomainLinkTitle:
		return typ.LinkTitle
	case DomainLinkDescription:
		return typ.LinkDescription
	}
	panic("genkan: unknown text domain: " + string(d))
}

// legacyColor returns the mode's flat per-domain color override, the older
// config form that predates the typography tables. It sits between the
// domain table and the default table in the cascade, so a domain typography
// color beats it but it beats the shared default.
func legacyColor(tc config.ThemeColors, d TextDomain) *string {
	switch d {
	case DomainHeader:
		return tc.HeaderColor
	case DomainBio:
		return tc.BioColor
	case DomainLinkTitle:
		return tc.LinkTitleColor
	case DomainLinkDescription:
		return tc.LinkDescriptionColor
	}
	panic("genkan: unknown text domain: " + string(d))
}
