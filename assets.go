package genkan

import (
	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/pipeline"
)

// assetRequests collects every image request one config implies: per-mode
// avatars and background images, social icons, link icons, and the favicon.
// Empty references produce no request. Duplicate requests are harmless; the
// pipeline deduplicates by request key.
func assetRequests(cfg *config.Config, links []LinkEntry) []pipeline.Request {
	var reqs []pipeline.Request
	add := func(raw string, role pipeline.Role, size int) {
		if raw == "" {
			return
		}
		reqs = append(reqs, requestFor(cfg, raw, role, size))
	}

	add(cfg.Profile.Light.Avatar, pipeline.RoleAvatar, cfg.Image.AvatarSize)
	add(cfg.Profile.Dark.Avatar, pipeline.RoleAvatar, cfg.Image.AvatarSize)
	add(cfg.Profile.Light.BackgroundImage, pipeline.RoleBackground, 0)
	add(cfg.Profile.Dark.BackgroundImage, pipeline.RoleBackground, 0)
	for _, social := range cfg.Profile.SocialLinks {
		add(social.Icon, pipeline.RoleSocialIcon, cfg.Image.SocialIconSize)
	}
	for _, link := range links {
		add(link.Icon, pipeline.RoleLinkIcon, cfg.Image.LinkIconSize)
	}
	add(cfg.Meta.Favicon, pipeline.RoleFavicon, cfg.Image.FaviconSize)

	return reqs
}

// requestFor builds the pipeline request for one image reference. Assembly
// uses the same construction to look results up, so both sides agree on
// request keys.
func requestFor(cfg *config.Config, raw string, role pipeline.Role, size int) pipeline.Request {
	return pipeline.Request{
		Source:     pipeline.Classify(raw, cfg.BaseDir),
		Role:       role,
		TargetSize: size,
	}
}

// toEmbeddedAsset converts a pipeline asset to its public form.
// Omitted assets convert to nil.
func toEmbeddedAsset(a pipeline.Asset) *EmbeddedAsset {
	if a.IsZero() {
		return nil
	}
	return &EmbeddedAsset{Kind: AssetKind(a.Kind), Value: a.Value}
}

// convertAssetError maps internal pipeline errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	if isError(err, pipeline.ErrCorrupt) {
		return wrapError(ErrAssetCorrupt, err)
	}
	return err
}
