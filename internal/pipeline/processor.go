package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one decode worker.
	MinWorkers = 1

	// MaxWorkers caps decode workers; large rasters are memory-hungry.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for fetch goroutines and the GC.
	cpuDivisor = 2

	// DefaultFetchLimit bounds in-flight HTTP fetches across all workers.
	DefaultFetchLimit = 4
)

// ResolveWorkers determines the decode worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
// Exported for CLIs that report the resolved value.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// Params configures a Processor. Zero values select defaults.
type Params struct {
	// Client performs remote fetches. Defaults to a client with
	// DefaultTimeout.
	Client *http.Client

	// Logger receives degradation warnings. Defaults to slog.Default().
	Logger *slog.Logger

	// CacheDir enables the content-addressed asset cache when non-empty.
	CacheDir string

	// Workers is the decode worker count; zero auto-sizes from GOMAXPROCS.
	Workers int

	// FetchLimit bounds concurrent HTTP fetches; zero selects
	// DefaultFetchLimit.
	FetchLimit int

	// Offline fails every network fetch fast as unavailable. Cached
	// entries still serve.
	Offline bool
}

// Processor acquires, transcodes, and embeds image assets. Safe for
// concurrent use.
type Processor struct {
	client   *http.Client
	logger   *slog.Logger
	cache    *Cache
	workers  int
	fetchSem chan struct{}
	offline  bool
}

// New creates a Processor from params, applying defaults for zero values.
func New(p Params) *Processor {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := p.FetchLimit
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	return &Processor{
		client:   client,
		logger:   logger,
		cache:    NewCache(p.CacheDir),
		workers:  ResolveWorkers(p.Workers),
		fetchSem: make(chan struct{}, limit),
		offline:  p.Offline,
	}
}

// Process resolves every request and returns the produced assets keyed by
// Request.Key(). Requests with equal keys are resolved once and share one
// result. A key absent from the map means the asset was omitted.
//
// Failures degrade per role: icon slots get the built-in placeholder,
// avatar, favicon, and background slots are omitted, each with a warning.
// Two conditions abort the build instead: context cancellation, and
// corrupt data in a local file, which the user can fix.
func (p *Processor) Process(ctx context.Context, reqs []Request) (map[string]Asset, error) {
	unique := make(map[string]Request, len(reqs))
	order := make([]string, 0, len(reqs))
	for _, req := range reqs {
		key := req.Key()
		if _, seen := unique[key]; seen {
			continue
		}
		unique[key] = req
		order = append(order, key)
	}
	if len(order) == 0 {
		return map[string]Asset{}, nil
	}

	type outcome struct {
		asset Asset
		err   error
	}
	outcomes := make([]outcome, len(order))

	workers := p.workers
	if workers > len(order) {
		workers = len(order)
	}

	var wg sync.WaitGroup
	jobs := make(chan int, len(order))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[idx] = outcome{err: err}
					continue
				}
				asset, err := p.resolve(ctx, unique[order[idx]])
				outcomes[idx] = outcome{asset: asset, err: err}
			}
		}()
	}

	for i := range order {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	assets := make(map[string]Asset, len(order))
	for i, key := range order {
		out := outcomes[i]
		if out.err == nil {
			assets[key] = out.asset
			continue
		}

		if errors.Is(out.err, context.Canceled) || errors.Is(out.err, context.DeadlineExceeded) {
			return nil, out.err
		}

		req := unique[key]
		if errors.Is(out.err, ErrCorrupt) && req.Source.Kind == SourceLocal {
			return nil, fmt.Errorf("%s %s: %w", req.Role, req.Source.Value, out.err)
		}

		if req.Role.usesPlaceholder() {
			p.logger.Warn("substituting placeholder for unavailable asset",
				"role", string(req.Role),
				"source", req.Source.Value,
				"error", out.err)
			assets[key] = Placeholder()
			continue
		}

		p.logger.Warn("omitting unavailable asset",
			"role", string(req.Role),
			"source", req.Source.Value,
			"error", out.err)
	}
	return assets, nil
}

// resolve produces the asset for one request.
func (p *Processor) resolve(ctx context.Context, req Request) (Asset, error) {
	switch req.Source.Kind {
	case SourceInline:
		return Asset{Kind: AssetText, Value: req.Source.Value}, nil

	case SourceData:
		return Asset{Kind: AssetDataURL, Value: req.Source.Value}, nil

	case SourceLocal:
		data, err := p.readLocal(req.Source.Value)
		if err != nil {
			return Asset{}, err
		}
		return p.embed(data, req)

	case SourceRemote:
		// Cache before network, so cached entries serve offline too.
		key := req.Key()
		if asset, ok := p.cache.Get(key); ok {
			return asset, nil
		}

		data, err := p.fetchRemote(ctx, req.Source.Value)
		if err != nil {
			return Asset{}, err
		}
		asset, err := p.embed(data, req)
		if err != nil {
			return Asset{}, err
		}
		if err := p.cache.Put(key, asset); err != nil {
			p.logger.Warn("asset cache write failed",
				"source", req.Source.Value,
				"error", err)
		}
		return asset, nil

	default:
		return Asset{}, fmt.Errorf("unknown source kind %q", req.Source.Kind)
	}
}

// embed converts raw image bytes into their embeddable form for the
// request's role. The format comes from content sniffing, never from the
// reference's extension.
func (p *Processor) embed(data []byte, req Request) (Asset, error) {
	switch format := DetectFormat(data); format {
	case FormatSVG:
		if req.Role.svgInline() {
			markup, err := RewriteForInline(data)
			if err != nil {
				return Asset{}, err
			}
			return Asset{Kind: AssetInlineSVG, Value: markup}, nil
		}
		return Asset{Kind: AssetDataURL, Value: EncodeDataURL(FormatSVG, data)}, nil

	case FormatICO:
		// No registered decoder for ICO; favicons are small, embed as-is.
		return Asset{Kind: AssetDataURL, Value: EncodeDataURL(FormatICO, data)}, nil

	case FormatUnknown:
		return Asset{}, fmt.Errorf("%w: unrecognized image format", ErrCorrupt)

	default:
		resized, outFormat, err := transcode(data, format, req.TargetSize)
		if err != nil {
			return Asset{}, err
		}
		return Asset{Kind: AssetDataURL, Value: EncodeDataURL(outFormat, resized)}, nil
	}
}
