package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	genkan "github.com/alnah/go-genkan"
	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrNoConfigs          = errors.New("no config files found")
	ErrWritePage          = errors.New("failed to write page")
	ErrConfigExists       = errors.New("config file already exists")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Default output layout, mirroring the init scaffold.
const (
	defaultOutputDir  = "output"
	defaultOutputName = "index.html"
)

// FileToBuild represents a single config to render.
type FileToBuild struct {
	ConfigPath string
	OutputPath string
}

// BuildResult holds the outcome of a single build.
type BuildResult struct {
	ConfigPath string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runBuildCmd parses build flags and executes the command.
func runBuildCmd(args []string, env *Environment) int {
	flags, paths, err := parseBuildFlags(args)
	if err != nil {
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()
	applyEnvConfig(envCfg, flags)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, paths, flags, envCfg.ConfigPath, env); err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild orchestrates config discovery, the batch, and result printing.
func runBuild(ctx context.Context, paths []string, flags *buildFlags, envConfigPath string, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	configs, err := discoverConfigs(paths, envConfigPath)
	if err != nil {
		return err
	}
	files := filesToBuild(configs, flags.output)

	logger := newLogger(flags.common, env.Stderr)
	builder, err := newBuilderFromFlags(flags, logger)
	if err != nil {
		return err
	}

	concurrency := pipeline.ResolveWorkers(flags.workers)
	results := buildBatch(ctx, builder, files, flags.theme.name, concurrency)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d build(s) failed: %w", failed, firstError(results))
	}

	return nil
}

// discoverConfigs expands positional args into config file paths.
// No args: the GENKAN_CONFIG env var, else the default names in the
// working directory. Directory args yield every .toml file inside,
// non-recursively.
func discoverConfigs(paths []string, envConfigPath string) ([]string, error) {
	if len(paths) == 0 {
		if envConfigPath != "" {
			paths = []string{envConfigPath}
		} else {
			found, err := config.Discover(".")
			if err != nil {
				return nil, err
			}
			paths = []string{found}
		}
	}

	var configs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, p)
			}
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		if !info.IsDir() {
			configs = append(configs, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		found := 0
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".toml") {
				configs = append(configs, filepath.Join(p, e.Name()))
				found++
			}
		}
		if found == 0 {
			return nil, fmt.Errorf("%w: no .toml files in %s", ErrNoConfigs, p)
		}
	}

	return configs, nil
}

// filesToBuild pairs each config with its resolved output path.
func filesToBuild(configs []string, output string) []FileToBuild {
	batch := len(configs) > 1
	files := make([]FileToBuild, len(configs))
	for i, c := range configs {
		files[i] = FileToBuild{ConfigPath: c, OutputPath: resolveOutputPath(c, output, batch)}
	}
	return files
}

// resolveOutputPath determines the page output path for a config file.
// Without --output the page lands in output/index.html next to the config.
// An --output ending in .html names the file directly (single config);
// anything else is treated as a directory.
func resolveOutputPath(configPath, output string, batch bool) string {
	if output == "" {
		return filepath.Join(filepath.Dir(configPath), defaultOutputDir, defaultOutputName)
	}

	if strings.HasSuffix(output, ".html") && !batch {
		return output
	}

	if batch {
		base := strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
		return filepath.Join(output, base+".html")
	}

	return filepath.Join(output, defaultOutputName)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > pipeline.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, pipeline.MaxWorkers)
	}
	return nil
}

// newBuilderFromFlags constructs the shared Builder from build flags.
// One Builder serves the whole batch: the fetch semaphore, asset cache,
// and dedup map are shared across concurrent builds.
func newBuilderFromFlags(flags *buildFlags, logger *slog.Logger) (*genkan.Builder, error) {
	opts := []genkan.Option{genkan.WithLogger(logger)}

	if dir := resolveThemesDir(flags.theme.themesDir); dir != "" {
		opts = append(opts, genkan.WithThemesDir(dir))
	}

	if dir := resolveCacheDir(flags.assets); dir != "" {
		opts = append(opts, genkan.WithCacheDir(dir))
	}

	if flags.assets.timeout != "" {
		d, err := time.ParseDuration(flags.assets.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.assets.timeout)
		}
		opts = append(opts, genkan.WithTimeout(d))
	}

	if flags.assets.offline {
		opts = append(opts, genkan.WithOffline(true))
	}
	if flags.workers > 0 {
		opts = append(opts, genkan.WithWorkers(flags.workers))
	}

	return genkan.NewBuilder(opts...)
}

// resolveThemesDir picks the custom themes directory: the explicit flag,
// else ./themes when present, else none (embedded themes only).
func resolveThemesDir(flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	if info, err := os.Stat("themes"); err == nil && info.IsDir() {
		return "themes"
	}
	return ""
}

// resolveCacheDir picks the asset cache directory: disabled by --no-cache,
// else the explicit flag, else a genkan subdirectory of the user cache.
// An unresolvable user cache dir silently disables caching.
func resolveCacheDir(assets assetFlags) string {
	if assets.noCache {
		return ""
	}
	if assets.cacheDir != "" {
		return assets.cacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "genkan")
}

// buildBatch renders files concurrently over a shared Builder.
func buildBatch(ctx context.Context, builder *genkan.Builder, files []FileToBuild, themeName string, concurrency int) []BuildResult {
	if len(files) == 0 {
		return nil
	}

	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]BuildResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{ConfigPath: files[idx].ConfigPath, Err: ctx.Err()}
					continue
				}
				results[idx] = buildOne(ctx, builder, files[idx], themeName)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildOne renders a single config and writes the page. Nothing is written
// when the build fails.
func buildOne(ctx context.Context, builder *genkan.Builder, f FileToBuild, themeName string) BuildResult {
	start := time.Now()
	result := BuildResult{ConfigPath: f.ConfigPath, OutputPath: f.OutputPath}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if themeName != "" {
		cfg.Theme.Name = themeName
	}

	res, err := builder.Build(ctx, cfg)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- generated pages are meant to be world-readable
	if err := os.WriteFile(f.OutputPath, res.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// firstError returns the first failure in results, for exit code mapping.
func firstError(results []BuildResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs build results and returns the failure count.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.ConfigPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.ConfigPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
