package genkan

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/dateutil"
	"github.com/alnah/go-genkan/internal/pipeline"
)

// defaultShareTitle heads the share modal when meta.share_title is unset.
const defaultShareTitle = "Share this page"

// bioRenderer renders the profile bio when bio_markdown is enabled. GFM
// inline syntax; raw HTML in the source never passes through unescaped.
var bioRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// assemble combines resolved styles, validated links, and processed assets
// with the config's metadata into the final SiteModel. Assets resolve by
// request key; a missing key means the asset was omitted and its slot stays
// nil.
func (b *Builder) assemble(cfg *config.Config, styles ResolvedStyles, links []LinkEntry, assets map[string]pipeline.Asset) (*SiteModel, error) {
	lookup := func(raw string, role pipeline.Role, size int) *EmbeddedAsset {
		if raw == "" {
			return nil
		}
		asset, ok := assets[requestFor(cfg, raw, role, size).Key()]
		if !ok {
			return nil
		}
		return toEmbeddedAsset(asset)
	}

	bioHTML, err := renderBio(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("rendering bio: %w", err)
	}

	updated, err := dateutil.ResolveAuto(cfg.Meta.Updated, b.now())
	if err != nil {
		return nil, fmt.Errorf("%w: meta.updated: %v", config.ErrInvalidConfig, err)
	}

	shareTitle := cfg.Meta.ShareTitle
	if shareTitle == "" {
		shareTitle = defaultShareTitle
	}

	model := &SiteModel{
		Name:    cfg.Profile.Name,
		BioHTML: bioHTML,
		Light: ModeAssets{
			Avatar:          lookup(cfg.Profile.Light.Avatar, pipeline.RoleAvatar, cfg.Image.AvatarSize),
			BackgroundImage: lookup(cfg.Profile.Light.BackgroundImage, pipeline.RoleBackground, 0),
			Background:      cfg.Profile.Light.Background,
		},
		Dark: ModeAssets{
			Avatar:          lookup(cfg.Profile.Dark.Avatar, pipeline.RoleAvatar, cfg.Image.AvatarSize),
			BackgroundImage: lookup(cfg.Profile.Dark.BackgroundImage, pipeline.RoleBackground, 0),
			Background:      cfg.Profile.Dark.Background,
		},
		Styles:      styles,
		ButtonStyle: strings.ToLower(cfg.Theme.ButtonStyle),
		FontFamily:  cfg.Theme.FontFamily,
		LinkSpacing: cfg.Theme.LinkSpacing,
		DarkMode:    strings.ToLower(cfg.DarkMode.Mode),
		Title:       pageTitle(cfg),
		Description: cfg.Meta.Description,
		PageURL:     cfg.Meta.PageURL,
		ShareTitle:  shareTitle,
		Favicon:     lookup(cfg.Meta.Favicon, pipeline.RoleFavicon, cfg.Image.FaviconSize),
		CustomCSS:   cfg.Meta.CustomCSS,
		Analytics:   cfg.Meta.Analytics,
		ShowFooter:  cfg.Meta.FooterEnabled(),
		Updated:     updated,
	}

	for _, social := range cfg.Profile.SocialLinks {
		model.SocialLinks = append(model.SocialLinks, SiteSocialLink{
			URL:   social.URL,
			Title: social.Title,
			Icon:  lookup(social.Icon, pipeline.RoleSocialIcon, cfg.Image.SocialIconSize),
		})
	}

	for _, link := range links {
		model.Links = append(model.Links, SiteLink{
			Kind:        link.Kind,
			Title:       link.Title,
			URL:         link.URL,
			Description: link.Description,
			Height:      link.Height,
			Icon:        lookup(link.Icon, pipeline.RoleLinkIcon, cfg.Image.LinkIconSize),
		})
	}

	if cfg.Meta.PageURL != "" {
		qr, err := pipeline.QRDataURL(cfg.Meta.PageURL)
		if err != nil {
			return nil, fmt.Errorf("generating QR code: %w", err)
		}
		model.QRCode = &EmbeddedAsset{Kind: AssetDataURL, Value: qr}
	}

	return model, nil
}

// pageTitle falls back to the profile name so the document always has one.
func pageTitle(cfg *config.Config) string {
	if cfg.Meta.Title != "" {
		return cfg.Meta.Title
	}
	return cfg.Profile.Name
}

// renderBio produces the bio's HTML: GFM-rendered when bio_markdown is set,
// plain text escaped otherwise.
func renderBio(p config.Profile) (string, error) {
	if p.Bio == "" {
		return "", nil
	}
	if !p.BioMarkdown {
		return html.EscapeString(p.Bio), nil
	}
	var buf bytes.Buffer
	if err := bioRenderer.Convert([]byte(p.Bio), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
