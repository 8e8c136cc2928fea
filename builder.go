package genkan

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/pipeline"
	"github.com/alnah/go-genkan/internal/render"
	"github.com/alnah/go-genkan/internal/theme"
)

// DefaultTimeout bounds each remote asset fetch when no custom HTTP client
// is supplied.
const DefaultTimeout = 10 * time.Second

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	timeout    time.Duration
	themesDir  string
	cacheDir   string
	workers    int
	fetchLimit int
	offline    bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithTimeout sets the per-fetch network timeout.
// Ignored when WithHTTPClient supplies a client; the client's own timeout
// applies then. Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("genkan: WithTimeout duration must be positive")
	}
	return func(b *Builder) {
		b.cfg.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client used for remote assets.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Builder) {
		b.client = c
	}
}

// WithLogger sets the logger for build diagnostics such as asset
// degradation warnings. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithThemesDir adds a custom themes directory. Its themes take precedence;
// the embedded themes remain available as fallback.
func WithThemesDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.themesDir = dir
	}
}

// WithCacheDir enables the on-disk cache for remote assets.
func WithCacheDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.cacheDir = dir
	}
}

// WithWorkers sets the asset pipeline worker count. Zero auto-sizes from
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.cfg.workers = n
	}
}

// WithFetchLimit bounds concurrent remote fetches.
func WithFetchLimit(n int) Option {
	return func(b *Builder) {
		b.cfg.fetchLimit = n
	}
}

// WithOffline skips all network fetches: remote icons degrade to the
// placeholder glyph, remote avatars, favicons, and background images are
// omitted. Cached entries still serve.
func WithOffline(offline bool) Option {
	return func(b *Builder) {
		b.cfg.offline = offline
	}
}

// Builder renders self-contained link pages from configurations.
// Create with NewBuilder, reuse across builds; safe for concurrent use.
type Builder struct {
	cfg    builderConfig
	logger *slog.Logger
	client *http.Client
	themes *theme.Resolver
	assets *pipeline.Processor
	now    func() time.Time
}

// NewBuilder creates a Builder with default configuration.
// Use options to customize behavior (e.g., WithThemesDir, WithCacheDir,
// WithOffline). Returns an error if the custom themes directory is invalid.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{timeout: DefaultTimeout},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.client == nil {
		b.client = &http.Client{Timeout: b.cfg.timeout}
	}

	themes, err := theme.NewResolver(b.cfg.themesDir)
	if err != nil {
		return nil, convertThemeError(err)
	}
	b.themes = themes

	b.assets = pipeline.New(pipeline.Params{
		Client:     b.client,
		Logger:     b.logger,
		CacheDir:   b.cfg.cacheDir,
		Workers:    b.cfg.workers,
		FetchLimit: b.cfg.fetchLimit,
		Offline:    b.cfg.offline,
	})

	return b, nil
}

// Result holds one completed build.
type Result struct {
	// HTML is the finished self-contained page.
	HTML []byte

	// Model is the resolved site model the page was rendered from, for
	// callers that inspect builds.
	Model *SiteModel
}

// Build renders one page from cfg. The context cancels in-flight asset
// fetches. The caller's config is not mutated; defaults apply to a copy.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context, cfg *config.Config) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	c, links, renderer, err := b.prepare(cfg)
	if err != nil {
		return nil, err
	}

	assets, err := b.assets.Process(ctx, assetRequests(c, links))
	if err != nil {
		return nil, convertAssetError(err)
	}

	model, err := b.assemble(c, ResolveStyles(c.Theme), links, assets)
	if err != nil {
		return nil, err
	}

	page, err := renderer.Render(ctx, viewPage(model), viewStyles(model))
	if err != nil {
		return nil, convertRenderError(err)
	}

	b.audit(page, model.Analytics)

	return &Result{HTML: []byte(page), Model: model}, nil
}

// Validate runs every check that needs no network or asset work: config
// validation, link rules, theme resolution, template parsing. A nil error
// means Build would pass those same stages.
func (b *Builder) Validate(cfg *config.Config) error {
	_, _, _, err := b.prepare(cfg)
	return err
}

// prepare runs the shared fail-fast stages for Build and Validate.
// TRUST BOUNDARY: cfg comes straight from the user; nothing downstream
// re-validates, so every structural rule is enforced here. Defaults are
// applied to a copy so the caller's config is never mutated.
func (b *Builder) prepare(cfg *config.Config) (*config.Config, []LinkEntry, *render.Renderer, error) {
	if cfg == nil {
		return nil, nil, nil, ErrNilConfig
	}

	c := *cfg
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, nil, nil, err
	}

	links, err := BuildLinks(c.Links)
	if err != nil {
		return nil, nil, nil, err
	}

	th, err := b.themes.Load(c.Theme.Name)
	if err != nil {
		return nil, nil, nil, convertThemeError(err)
	}

	renderer, err := render.New(th)
	if err != nil {
		return nil, nil, nil, wrapError(ErrInvalidTheme, err)
	}

	return &c, links, renderer, nil
}

// audit parses the finished page and logs every reference that would make
// it depend on the network. Analytics snippets legitimately load external
// scripts; their references log at Debug instead of Warn.
func (b *Builder) audit(page, analytics string) {
	refs, err := render.FindExternalRefs(page)
	if err != nil {
		b.logger.Warn("self-containment audit skipped", "error", err)
		return
	}
	for _, ref := range refs {
		if analytics != "" && strings.Contains(analytics, ref.URL) {
			b.logger.Debug("external reference from analytics snippet",
				"element", ref.Element, "url", ref.URL)
			continue
		}
		b.logger.Warn("page is not self-contained",
			"element", ref.Element, "attr", ref.Attr, "url", ref.URL)
	}
}

// convertThemeError maps internal theme errors to public errors.
func convertThemeError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isError(err, theme.ErrThemeNotFound):
		return wrapError(ErrThemeNotFound, err)
	case isError(err, theme.ErrIncompleteTheme):
		return wrapError(ErrIncompleteTheme, err)
	case isError(err, theme.ErrInvalidThemeName):
		return wrapError(ErrInvalidThemeName, err)
	case isError(err, theme.ErrPathTraversal):
		return wrapError(ErrInvalidThemeName, err) // traversal means the name was bad
	case isError(err, theme.ErrInvalidThemesDir):
		return wrapError(ErrInvalidThemesDir, err)
	case isError(err, theme.ErrThemeRead):
		return wrapError(ErrThemeRead, err)
	default:
		return err
	}
}

// convertRenderError maps internal render errors to public errors.
func convertRenderError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isError(err, render.ErrStyleRender), isError(err, render.ErrPageRender):
		return wrapError(ErrRenderFailed, err)
	default:
		return err
	}
}
