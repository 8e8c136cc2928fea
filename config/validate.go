package config

import (
	"fmt"
	"strings"
)

// Validate checks structural rules and field lengths. Called automatically
// by Load, but available for consumers who construct Config manually.
// Entry-level spacer rules (height required, no url/icon/description) are
// enforced by the link model builder, not here.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	if strings.TrimSpace(c.Profile.Name) == "" {
		return fmt.Errorf("%w: profile.name cannot be empty", ErrInvalidConfig)
	}
	if len(c.Links) == 0 {
		return fmt.Errorf("%w: at least one link must be defined", ErrInvalidConfig)
	}

	if c.DarkMode.Mode != "" {
		switch strings.ToLower(c.DarkMode.Mode) {
		case "auto", "light", "dark", "disable":
			// valid
		default:
			return fmt.Errorf("%w: invalid dark_mode.mode %q (must be auto, light, dark, or disable)",
				ErrInvalidConfig, c.DarkMode.Mode)
		}
	}

	if err := c.validateSizes(); err != nil {
		return err
	}

	// Validate profile fields
	if err := validateFieldLength("profile.name", c.Profile.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("profile.bio", c.Profile.Bio, MaxBioLength); err != nil {
		return err
	}
	for _, mode := range []struct {
		name   string
		assets ProfileAssets
	}{{"profile.light", c.Profile.Light}, {"profile.dark", c.Profile.Dark}} {
		if err := validateFieldLength(mode.name+".avatar", mode.assets.Avatar, MaxURLLength); err != nil {
			return err
		}
		if err := validateFieldLength(mode.name+".background", mode.assets.Background, MaxSnippetLength); err != nil {
			return err
		}
		if err := validateFieldLength(mode.name+".background_image", mode.assets.BackgroundImage, MaxURLLength); err != nil {
			return err
		}
	}

	for i, social := range c.Profile.SocialLinks {
		field := fmt.Sprintf("profile.social_links[%d]", i)
		if social.Icon == "" {
			return fmt.Errorf("%w: %s.icon cannot be empty", ErrInvalidConfig, field)
		}
		if social.URL == "" {
			return fmt.Errorf("%w: %s.url cannot be empty", ErrInvalidConfig, field)
		}
		if err := validateFieldLength(field+".icon", social.Icon, MaxIconLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".url", social.URL, MaxURLLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".title", social.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	// Validate theme fields
	if err := validateFieldLength("theme.font_family", c.Theme.FontFamily, MaxFontLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.link_spacing", c.Theme.LinkSpacing, MaxSizeLength); err != nil {
		return err
	}
	if err := validateThemeColors("theme.light", c.Theme.Light); err != nil {
		return err
	}
	if err := validateThemeColors("theme.dark", c.Theme.Dark); err != nil {
		return err
	}
	if err := c.Theme.Typography.validate(); err != nil {
		return err
	}

	// Validate meta fields
	if err := validateFieldLength("meta.title", c.Meta.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.description", c.Meta.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.page_url", c.Meta.PageURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.favicon", c.Meta.Favicon, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.custom_css", c.Meta.CustomCSS, MaxSnippetLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.analytics", c.Meta.Analytics, MaxSnippetLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.share_title", c.Meta.ShareTitle, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.updated", c.Meta.Updated, MaxUpdatedLength); err != nil {
		return err
	}

	// Validate links
	for i := range c.Links {
		link := &c.Links[i]
		switch link.Type() {
		case LinkTypeBlock, LinkTypeSpace:
			// valid
		default:
			return fmt.Errorf("%w: invalid link_type %q for link %q (must be block or space)",
				ErrInvalidConfig, link.LinkType, linkIdentifier(link, i))
		}
		if link.Type() == LinkTypeBlock && strings.TrimSpace(link.Title) == "" {
			return fmt.Errorf("%w: link title cannot be empty for block type (link at index %d)",
				ErrInvalidConfig, i)
		}
		field := fmt.Sprintf("links[%d]", i)
		if err := validateFieldLength(field+".title", link.Title, MaxTitleLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".url", link.URL, MaxURLLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".icon", link.Icon, MaxIconLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".description", link.Description, MaxDescriptionLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".height", link.Height, MaxHeightLength); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateSizes() error {
	sizes := []struct {
		name  string
		value int
	}{
		{"image.avatar_size", c.Image.AvatarSize},
		{"image.social_icon_size", c.Image.SocialIconSize},
		{"image.link_icon_size", c.Image.LinkIconSize},
		{"image.favicon_size", c.Image.FaviconSize},
	}
	for _, s := range sizes {
		if s.value < 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, s.name, s.value)
		}
	}
	return nil
}

func (t Typography) validate() error {
	tables := []struct {
		name  string
		style TypographyStyle
	}{
		{"theme.typography.default", t.Default},
		{"theme.typography.header", t.Header},
		{"theme.typography.bio", t.Bio},
		{"theme.typography.link_title", t.LinkTitle},
		{"theme.typography.link_description", t.LinkDescription},
	}
	for _, table := range tables {
		if err := validateTypographyStyle(table.name, table.style); err != nil {
			return err
		}
	}
	return nil
}

func validateTypographyStyle(prefix string, s TypographyStyle) error {
	fields := []struct {
		name  string
		value *string
		max   int
	}{
		{prefix + ".size", s.Size, MaxSizeLength},
		{prefix + ".font", s.Font, MaxFontLength},
		{prefix + ".weight", s.Weight, MaxSizeLength},
		{prefix + ".style", s.Style, MaxSizeLength},
		{prefix + ".color", s.Color, MaxColorLength},
		{prefix + ".size_dark", s.SizeDark, MaxSizeLength},
		{prefix + ".font_dark", s.FontDark, MaxFontLength},
		{prefix + ".weight_dark", s.WeightDark, MaxSizeLength},
		{prefix + ".style_dark", s.StyleDark, MaxSizeLength},
		{prefix + ".color_dark", s.ColorDark, MaxColorLength},
	}
	for _, f := range fields {
		if err := validateOptionalLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

func validateThemeColors(prefix string, colors ThemeColors) error {
	fields := []struct {
		name  string
		value *string
	}{
		{prefix + ".primary_color", colors.PrimaryColor},
		{prefix + ".secondary_color", colors.SecondaryColor},
		{prefix + ".background_color", colors.BackgroundColor},
		{prefix + ".header_color", colors.HeaderColor},
		{prefix + ".bio_color", colors.BioColor},
		{prefix + ".link_title_color", colors.LinkTitleColor},
		{prefix + ".link_description_color", colors.LinkDescriptionColor},
	}
	for _, f := range fields {
		if err := validateOptionalLength(f.name, f.value, MaxColorLength); err != nil {
			return err
		}
	}
	return nil
}

// linkIdentifier names a link for error messages: its title when present,
// otherwise its position.
func linkIdentifier(link *Link, index int) string {
	if link.Title != "" {
		return link.Title
	}
	return fmt.Sprintf("index %d", index)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateOptionalLength(fieldName string, value *string, maxLength int) error {
	if value == nil {
		return nil
	}
	return validateFieldLength(fieldName, *value, maxLength)
}
