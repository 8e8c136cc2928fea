package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// UserAgent identifies genkan to remote hosts. Browser-compatible
	// because some icon CDNs reject obvious bot agents.
	UserAgent = "Mozilla/5.0 (compatible; Genkan/1.0)"

	// DefaultTimeout bounds one remote fetch, connection to last byte.
	DefaultTimeout = 10 * time.Second

	// MaxFetchSize caps a remote response body at 10 MiB.
	MaxFetchSize = 10 << 20
)

// fetchRemote downloads one asset. A single attempt, no retries; every
// failure wraps ErrUnavailable. In-flight fetches across workers are
// bounded by the fetch semaphore.
func (p *Processor) fetchRemote(ctx context.Context, rawURL string) ([]byte, error) {
	if p.offline {
		return nil, fmt.Errorf("%w: offline mode, not fetching %s", ErrUnavailable, rawURL)
	}

	select {
	case p.fetchSem <- struct{}{}:
		defer func() { <-p.fetchSem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: HTTP %d fetching %s", ErrUnavailable, resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize+1))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, rawURL, err)
	}
	if len(data) > MaxFetchSize {
		return nil, fmt.Errorf("%w: %s exceeds the %d byte cap", ErrUnavailable, rawURL, MaxFetchSize)
	}
	return data, nil
}

// readLocal reads one asset from disk. The path was resolved and
// existence-checked at classification, but may have changed since.
func (p *Processor) readLocal(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}
