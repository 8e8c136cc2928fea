package pipeline

import "errors"

// Sentinel errors for asset processing.
var (
	// ErrUnavailable marks acquisition failures: network errors, HTTP error
	// statuses, oversized responses, unreadable files. Recoverable; the
	// build substitutes a placeholder or omits the asset.
	ErrUnavailable = errors.New("asset unavailable")

	// ErrCorrupt marks undecodable image bytes. Fatal for local sources,
	// degraded to unavailable for remote ones.
	ErrCorrupt = errors.New("corrupt image data")
)
