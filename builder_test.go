package genkan

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/render"
)

// pngBytes encodes a solid-color PNG of the given dimensions.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

// decodeDataURL decodes a base64 image data URL back into an image.
func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		t.Fatalf("not a base64 data URL: %.60q", dataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		t.Fatalf("failed to decode data URL payload: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode embedded image: %v", err)
	}
	return img
}

// minimalConfig returns the smallest config that builds: a name and one
// emoji-icon link, so no test hits the network unless it asks to.
func minimalConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Profile.Name = "Ada Lovelace"
	cfg.Links = []config.Link{{Title: "Notes", URL: "https://example.com/notes", Icon: "🌐"}}
	return cfg
}

// failingTransport fails the test if any request goes out.
type failingTransport struct {
	t *testing.T
}

func (ft failingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ft.t.Errorf("unexpected network request to %s", req.URL)
	return nil, fmt.Errorf("network disabled in this test")
}

// ---------------------------------------------------------------------------
// TestBuild_MinimalPage - Smallest Config to Finished Page
// ---------------------------------------------------------------------------

func TestBuild_MinimalPage(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, WithHTTPClient(&http.Client{Transport: failingTransport{t}}))
	result, err := b.Build(context.Background(), minimalConfig())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	page := string(result.HTML)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Ada Lovelace",
		"Notes",
		"🌐",
		`href="https://example.com/notes"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}

	refs, err := render.FindExternalRefs(page)
	if err != nil {
		t.Fatalf("FindExternalRefs() unexpected error: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("page is not self-contained: %+v", refs)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_AvatarResized - Remote Avatar Downscaled to Target
// ---------------------------------------------------------------------------

func TestBuild_AvatarResized(t *testing.T) {
	t.Parallel()

	large := pngBytes(t, 1024, 1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(large)
	}))
	defer srv.Close()

	cfg := minimalConfig()
	cfg.Profile.Light.Avatar = srv.URL + "/ada.png"
	cfg.Image.AvatarSize = 512

	b := newTestBuilder(t)
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	avatar := result.Model.Light.Avatar
	if avatar == nil || avatar.Kind != AssetDataURL {
		t.Fatalf("avatar = %+v, want embedded data URL", avatar)
	}
	img := decodeDataURL(t, avatar.Value)
	bounds := img.Bounds()
	if bounds.Dx() != 512 || bounds.Dy() != 512 {
		t.Errorf("avatar decoded to %dx%d, want 512x512", bounds.Dx(), bounds.Dy())
	}
	if !strings.Contains(string(result.HTML), avatar.Value[:64]) {
		t.Error("page does not embed the avatar data URL")
	}
}

// ---------------------------------------------------------------------------
// TestBuild_RemoteFailureDegrades - Omission vs Placeholder per Role
// ---------------------------------------------------------------------------

func TestBuild_RemoteFailureDegrades(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := minimalConfig()
	cfg.Profile.Light.Avatar = srv.URL + "/ada.png"
	cfg.Links = append(cfg.Links, config.Link{Title: "Broken icon", URL: "https://example.com", Icon: srv.URL + "/icon.png"})

	b := newTestBuilder(t)
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if result.Model.Light.Avatar != nil {
		t.Errorf("avatar = %+v, want omitted on fetch failure", result.Model.Light.Avatar)
	}
	if strings.Contains(string(result.HTML), `class="avatar`) {
		t.Error("page renders an avatar element for an omitted avatar")
	}

	icon := result.Model.Links[1].Icon
	if icon == nil || icon.Kind != AssetInlineSVG {
		t.Fatalf("link icon = %+v, want placeholder glyph", icon)
	}
	if !strings.Contains(icon.Value, "<svg") {
		t.Errorf("placeholder = %.60q, want inline SVG markup", icon.Value)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_BlockWithoutIcon - No Placeholder for Unset Icons
// ---------------------------------------------------------------------------

func TestBuild_BlockWithoutIcon(t *testing.T) {
	t.Parallel()

	cfg := minimalConfig()
	cfg.Links = []config.Link{{Title: "Plain", URL: "https://example.com"}}

	b := newTestBuilder(t, WithHTTPClient(&http.Client{Transport: failingTransport{t}}))
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if result.Model.Links[0].Icon != nil {
		t.Errorf("icon = %+v, want nil for a block that configured none", result.Model.Links[0].Icon)
	}
	if strings.Contains(string(result.HTML), `class="link-icon"`) {
		t.Error("page renders an icon slot for an icon-less block")
	}
}

// ---------------------------------------------------------------------------
// TestBuild_IconDedup - Identical References Fetch Once
// ---------------------------------------------------------------------------

func TestBuild_IconDedup(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	icon := pngBytes(t, 64, 64)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(icon)
	}))
	defer srv.Close()

	cfg := minimalConfig()
	iconURL := srv.URL + "/shared.png"
	cfg.Links = []config.Link{
		{Title: "One", URL: "https://example.com/1", Icon: iconURL},
		{Title: "Two", URL: "https://example.com/2", Icon: iconURL},
		{Title: "Three", URL: "https://example.com/3", Icon: iconURL},
	}

	b := newTestBuilder(t)
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("icon fetched %d times, want 1", got)
	}
	first := result.Model.Links[0].Icon
	for i, link := range result.Model.Links {
		if link.Icon == nil || link.Icon.Value != first.Value {
			t.Errorf("links[%d] icon differs from shared result", i)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuild_CacheAcrossBuilders - Disk Cache Survives the Builder
// ---------------------------------------------------------------------------

func TestBuild_CacheAcrossBuilders(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	icon := pngBytes(t, 64, 64)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(icon)
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	cfg := minimalConfig()
	cfg.Links[0].Icon = srv.URL + "/icon.png"

	first := newTestBuilder(t, WithCacheDir(cacheDir))
	if _, err := first.Build(context.Background(), cfg); err != nil {
		t.Fatalf("first Build() unexpected error: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("first build fetched %d times, want 1", got)
	}

	second := newTestBuilder(t, WithCacheDir(cacheDir))
	if _, err := second.Build(context.Background(), cfg); err != nil {
		t.Fatalf("second Build() unexpected error: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("second build fetched again (total %d), want cache hit", got)
	}

	// A corrupt cache entry is a miss: the asset is refetched, not failed.
	entries, err := os.ReadDir(cacheDir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected cache entries, got %d (err %v)", len(entries), err)
	}
	for _, entry := range entries {
		if err := os.WriteFile(filepath.Join(cacheDir, entry.Name()), []byte("{corrupt"), 0o644); err != nil {
			t.Fatalf("failed to corrupt cache entry: %v", err)
		}
	}
	third := newTestBuilder(t, WithCacheDir(cacheDir))
	if _, err := third.Build(context.Background(), cfg); err != nil {
		t.Fatalf("third Build() unexpected error: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("corrupt cache entry: fetched %d times total, want 2", got)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_Offline - Network Skipped, Build Still Succeeds
// ---------------------------------------------------------------------------

func TestBuild_Offline(t *testing.T) {
	t.Parallel()

	cfg := minimalConfig()
	cfg.Profile.Light.Avatar = "https://unreachable.example/ada.png"

	b := newTestBuilder(t,
		WithOffline(true),
		WithHTTPClient(&http.Client{Transport: failingTransport{t}}),
	)
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if result.Model.Light.Avatar != nil {
		t.Errorf("avatar = %+v, want omitted offline", result.Model.Light.Avatar)
	}
	if !strings.Contains(string(result.HTML), "🌐") {
		t.Error("inline emoji icon should not need the network")
	}
}

// ---------------------------------------------------------------------------
// TestBuild_CorruptLocalAsset - Undecodable Local File Is Fatal
// ---------------------------------------------------------------------------

func TestBuild_CorruptLocalAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badFile := filepath.Join(dir, "avatar.png")
	if err := os.WriteFile(badFile, []byte("not an image at all"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	cfg := minimalConfig()
	cfg.Profile.Light.Avatar = badFile

	b := newTestBuilder(t)
	_, err := b.Build(context.Background(), cfg)
	if !errors.Is(err, ErrAssetCorrupt) {
		t.Errorf("Build() error = %v, want ErrAssetCorrupt", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_ErrorPaths - Fatal Inputs Abort Before Output
// ---------------------------------------------------------------------------

func TestBuild_ErrorPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr error
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: ErrNilConfig,
		},
		{
			name: "no links",
			cfg: func() *config.Config {
				cfg := minimalConfig()
				cfg.Links = nil
				return cfg
			}(),
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "spacer with url",
			cfg: func() *config.Config {
				cfg := minimalConfig()
				cfg.Links = append(cfg.Links, config.Link{LinkType: "space", Height: "24px", URL: "https://example.com"})
				return cfg
			}(),
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "unknown theme",
			cfg: func() *config.Config {
				cfg := minimalConfig()
				cfg.Theme.Name = "no-such-theme"
				return cfg
			}(),
			wantErr: ErrThemeNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBuilder(t)
			_, err := b.Build(context.Background(), tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuild_ConfigNotMutated - Defaults Apply to a Copy
// ---------------------------------------------------------------------------

func TestBuild_ConfigNotMutated(t *testing.T) {
	t.Parallel()

	cfg := minimalConfig()
	b := newTestBuilder(t)
	if _, err := b.Build(context.Background(), cfg); err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if cfg.Theme.Name != "" {
		t.Errorf("caller's config mutated: theme name = %q, want empty", cfg.Theme.Name)
	}
	if cfg.Image.AvatarSize != 0 {
		t.Errorf("caller's config mutated: avatar size = %d, want 0", cfg.Image.AvatarSize)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_ContextCanceled - Cancellation Propagates
// ---------------------------------------------------------------------------

func TestBuild_ContextCanceled(t *testing.T) {
	t.Parallel()

	cfg := minimalConfig()
	cfg.Profile.Light.Avatar = "https://unreachable.example/ada.png"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := newTestBuilder(t)
	_, err := b.Build(ctx, cfg)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_Deterministic - Same Config, Same Bytes
// ---------------------------------------------------------------------------

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := minimalConfig()
	cfg.Profile.Bio = "Deterministic output"
	cfg.Meta.PageURL = "https://links.example/ada"
	cfg.Links = append(cfg.Links, config.Link{LinkType: "space", Height: "16px"}, config.Link{Title: "Last"})

	b := newTestBuilder(t)
	first, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("first Build() unexpected error: %v", err)
	}
	second, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("second Build() unexpected error: %v", err)
	}
	if !bytes.Equal(first.HTML, second.HTML) {
		t.Error("two builds of the same config differ")
	}
}

// ---------------------------------------------------------------------------
// TestBuild_CustomThemesDir - Filesystem Themes Take Precedence
// ---------------------------------------------------------------------------

func TestBuild_CustomThemesDir(t *testing.T) {
	t.Parallel()

	themesDir := t.TempDir()
	themeDir := filepath.Join(themesDir, "plain")
	if err := os.MkdirAll(themeDir, 0o755); err != nil {
		t.Fatalf("failed to create theme dir: %v", err)
	}
	page := `<!DOCTYPE html><html lang="{{.Lang}}"><head><title>{{.Title}}</title><style>{{.Style}}</style></head>` +
		`<body data-marker="custom-theme"><h1>{{.Name}}</h1></body></html>`
	if err := os.WriteFile(filepath.Join(themeDir, "template.html"), []byte(page), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	css := "h1 { color: {{.Light.Header.Color}}; }"
	if err := os.WriteFile(filepath.Join(themeDir, "style.css"), []byte(css), 0o644); err != nil {
		t.Fatalf("failed to write stylesheet: %v", err)
	}

	cfg := minimalConfig()
	cfg.Theme.Name = "plain"

	b := newTestBuilder(t, WithThemesDir(themesDir))
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if !strings.Contains(string(result.HTML), `data-marker="custom-theme"`) {
		t.Error("custom theme was not used")
	}
	if !strings.Contains(string(result.HTML), "color: #000000") {
		t.Error("stylesheet did not interpolate resolved styles")
	}
}

// ---------------------------------------------------------------------------
// TestNewBuilder_InvalidThemesDir - Bad Directory Fails Construction
// ---------------------------------------------------------------------------

func TestNewBuilder_InvalidThemesDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := NewBuilder(WithThemesDir(file))
	if !errors.Is(err, ErrInvalidThemesDir) {
		t.Errorf("NewBuilder() error = %v, want ErrInvalidThemesDir", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_DarkModePresentation - Mode Attribute and Toggle
// ---------------------------------------------------------------------------

func TestBuild_DarkModePresentation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mode       string
		wantAttr   string
		wantToggle bool
	}{
		{name: "default disable", mode: "", wantAttr: `data-dark-mode="disable"`, wantToggle: false},
		{name: "auto", mode: "auto", wantAttr: `data-dark-mode="auto"`, wantToggle: true},
		{name: "dark", mode: "dark", wantAttr: `data-dark-mode="dark"`, wantToggle: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := minimalConfig()
			cfg.DarkMode.Mode = tt.mode

			b := newTestBuilder(t)
			result, err := b.Build(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			page := string(result.HTML)
			if !strings.Contains(page, tt.wantAttr) {
				t.Errorf("page missing %q", tt.wantAttr)
			}
			if got := strings.Contains(page, `class="theme-toggle"`); got != tt.wantToggle {
				t.Errorf("toggle rendered = %v, want %v", got, tt.wantToggle)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuild_CustomCSS - User CSS Injected Through the Trust Gate
// ---------------------------------------------------------------------------

func TestBuild_CustomCSS(t *testing.T) {
	t.Parallel()

	cfg := minimalConfig()
	cfg.Meta.CustomCSS = ".profile-name { color: teal; }\n</style><script>alert(1)</script>"

	b := newTestBuilder(t)
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	page := string(result.HTML)
	if !strings.Contains(page, ".profile-name { color: teal; }") {
		t.Error("custom CSS missing from the page")
	}
	if strings.Contains(page, "</style><script>alert(1)</script>") {
		t.Error("custom CSS can break out of its style block")
	}
}

// ---------------------------------------------------------------------------
// TestBuild_AuditLogging - External Analytics Logged at Debug
// ---------------------------------------------------------------------------

func TestBuild_AuditLogging(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := minimalConfig()
	cfg.Meta.Analytics = `<script defer data-domain="ada.example" src="https://plausible.io/js/script.js"></script>`

	b, err := NewBuilder(WithLogger(logger))
	if err != nil {
		t.Fatalf("failed to create builder: %v", err)
	}
	if _, err := b.Build(context.Background(), cfg); err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	out := logs.String()
	if !strings.Contains(out, "external reference from analytics snippet") {
		t.Errorf("expected a debug entry for the analytics script, got logs:\n%s", out)
	}
	if strings.Contains(out, "page is not self-contained") {
		t.Errorf("analytics reference escalated to a warning:\n%s", out)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Fail-Fast Checks Without Asset Work
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		cfg     *config.Config // overrides mutate when set
		wantErr error          // nil means valid
	}{
		{
			name:   "valid config with remote assets",
			mutate: func(cfg *config.Config) { cfg.Profile.Light.Avatar = "https://unreachable.example/a.png" },
		},
		{
			name:    "empty config",
			cfg:     &config.Config{},
			wantErr: config.ErrInvalidConfig, // empty profile name
		},
		{
			name:    "spacer missing height",
			mutate:  func(cfg *config.Config) { cfg.Links = append(cfg.Links, config.Link{LinkType: "space"}) },
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "unknown theme",
			mutate:  func(cfg *config.Config) { cfg.Theme.Name = "missing" },
			wantErr: ErrThemeNotFound,
		},
		{
			name:    "bad dark mode enum",
			mutate:  func(cfg *config.Config) { cfg.DarkMode.Mode = "midnight" },
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			if cfg == nil {
				cfg = minimalConfig()
				if tt.mutate != nil {
					tt.mutate(cfg)
				}
			}

			// Validation must never touch the network.
			b := newTestBuilder(t, WithHTTPClient(&http.Client{Transport: failingTransport{t}}))
			err := b.Validate(cfg)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_MalformedCustomTheme - Template Parsing Is a Validate Check
// ---------------------------------------------------------------------------

func TestValidate_MalformedCustomTheme(t *testing.T) {
	t.Parallel()

	themesDir := t.TempDir()
	themeDir := filepath.Join(themesDir, "broken")
	if err := os.MkdirAll(themeDir, 0o755); err != nil {
		t.Fatalf("failed to create theme dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(themeDir, "template.html"), []byte("<html>{{.Title</html>"), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	if err := os.WriteFile(filepath.Join(themeDir, "style.css"), []byte("body {}"), 0o644); err != nil {
		t.Fatalf("failed to write stylesheet: %v", err)
	}

	cfg := minimalConfig()
	cfg.Theme.Name = "broken"

	b := newTestBuilder(t, WithThemesDir(themesDir))
	err := b.Validate(cfg)
	if !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Validate() error = %v, want ErrInvalidTheme", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuild_ScaffoldRoundTrip - The init Scaffold Builds Cleanly
// ---------------------------------------------------------------------------

func TestBuild_ScaffoldRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(config.ScaffoldTOML), 0o644); err != nil {
		t.Fatalf("failed to write scaffold: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	b := newTestBuilder(t, WithOffline(true))
	result, err := b.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if !strings.Contains(string(result.HTML), "<!DOCTYPE html>") {
		t.Error("scaffold build produced no page")
	}
}
