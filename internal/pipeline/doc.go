// Package pipeline implements the asset acquisition-and-transcoding pipeline.
//
// This package resolves image references into embeddable assets:
//   - Classification (remote URL, local path, data URL, inline text)
//   - Acquisition (bounded concurrent fetches, local reads)
//   - Format detection by content sniffing
//   - Conditional resizing (never upscale, SVG/ICO exempt)
//   - Base64 data-URL encoding and inline-SVG rewriting
//   - Deduplication of identical work within one build
//   - An optional content-addressed disk cache across builds
//
// Style and color resolution is handled separately by the root genkan
// package. This separation keeps the pipeline focused on bytes in, assets
// out, while the resolver deals in configuration semantics.
package pipeline
