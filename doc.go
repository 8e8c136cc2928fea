// Package genkan builds self-contained link-in-bio pages from declarative
// configuration. One TOML or YAML file describing a profile, its links, and
// a theme becomes one HTML file with every image, style, and script
// embedded: the output needs no server-side assets and works from any
// static host, or straight off a disk.
//
// # Quick Start
//
// Create a builder, load a config, and build:
//
//	builder, err := genkan.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := config.Load("config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := builder.Build(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The result carries the finished page (result.HTML) and the resolved site
// model (result.Model) for callers that inspect builds.
//
// # Build Pipeline
//
// A build runs these stages:
//
//  1. Config validation and link normalization (fail fast, no I/O)
//  2. Theme resolution and template parsing (custom dir, then embedded)
//  3. Asset processing: fetch or read every referenced image, resize
//     rasters to their role's target size, embed as data URLs or inline
//     SVG (concurrent, bounded)
//  4. Style resolution: per-domain typography and colors for both modes
//  5. Assembly into the site model, then template rendering
//
// Remote asset failures never fail a build: icons degrade to a built-in
// placeholder glyph, avatars, favicons, and background images are omitted,
// each with a warning. Only a corrupt local image file aborts.
//
// # Configuration
//
// Configs load through the config package, which applies defaults and
// enforces structural rules. Use functional options to customize the
// builder itself:
//
//	builder, err := genkan.NewBuilder(
//	    genkan.WithThemesDir("./themes"),
//	    genkan.WithCacheDir(cacheDir),
//	    genkan.WithTimeout(30 * time.Second),
//	    genkan.WithOffline(true),
//	)
//
// # Themes
//
// A theme is a directory with template.html, style.css, and an optional
// script.js. The built-in theme "simple" is embedded in the binary;
// WithThemesDir adds a directory of custom themes that take precedence.
// Validate checks a config against its theme without touching the network:
//
//	if err := builder.Validate(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Offline Builds and Caching
//
// WithCacheDir caches processed remote assets on disk, keyed by source,
// role, and size, so repeated builds skip refetching. WithOffline skips the
// network entirely; cached entries still serve, everything else degrades.
package genkan
