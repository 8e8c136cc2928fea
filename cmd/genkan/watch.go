package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor save bursts into one rebuild.
const debounceDelay = 250 * time.Millisecond

// runWatchCmd parses watch flags and executes the command.
func runWatchCmd(args []string, env *Environment) int {
	flags, paths, err := parseWatchFlags(args)
	if err != nil {
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()
	applyEnvConfig(envCfg, &flags.build)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runWatch(ctx, paths, flags, envCfg.ConfigPath, env); err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runWatch rebuilds the page whenever the config or theme files change,
// until the context is canceled. A failed rebuild keeps the watch alive.
func runWatch(ctx context.Context, paths []string, flags *watchFlags, envConfigPath string, env *Environment) error {
	configs, err := discoverConfigs(paths, envConfigPath)
	if err != nil {
		return err
	}
	configPath := configs[0]
	outputPath := resolveOutputPath(configPath, flags.build.output, false)

	logger := newLogger(flags.build.common, env.Stderr)
	builder, err := newBuilderFromFlags(&flags.build, logger)
	if err != nil {
		return err
	}

	rebuild := func() {
		res := buildOne(ctx, builder, FileToBuild{ConfigPath: configPath, OutputPath: outputPath}, flags.build.theme.name)
		if res.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", res.ConfigPath, res.Err)
			return
		}
		if !flags.build.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s (%v)\n", res.OutputPath, res.Duration.Round(time.Millisecond))
		}
	}

	rebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the config's directory rather than the file itself: editors
	// replace files on save, which drops a watch on the old inode.
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(configPath), err)
	}
	if dir := resolveThemesDir(flags.build.theme.themesDir); dir != "" {
		if err := addThemeWatches(watcher, dir); err != nil {
			return fmt.Errorf("watching themes: %w", err)
		}
	}

	if flags.addr != "" {
		go serveOutput(ctx, flags.addr, filepath.Dir(outputPath), env)
	}

	fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", configPath)

	// The timer starts stopped; events arm it, and the rebuild fires only
	// after a quiet period.
	timer := time.NewTimer(debounceDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == filepath.Clean(outputPath) {
				continue
			}
			if !relevantEvent(event) {
				continue
			}
			timer.Reset(debounceDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", err)
		case <-timer.C:
			rebuild()
		}
	}
}

// relevantEvent reports whether a filesystem event should trigger a rebuild.
// Editor temp files (config.toml~, .swp, vim's numeric probes) are ignored.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".toml", ".yaml", ".yml", ".html", ".css", ".js":
		return true
	}
	return false
}

// addThemeWatches registers the themes directory and each theme inside it.
// fsnotify watches are not recursive.
func addThemeWatches(watcher *fsnotify.Watcher, dir string) error {
	if err := watcher.Add(dir); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := watcher.Add(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// serveOutput serves dir over HTTP until ctx is canceled.
func serveOutput(ctx context.Context, addr, dir string, env *Environment) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           http.FileServer(http.Dir(dir)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	display := addr
	if strings.HasPrefix(display, ":") {
		display = "localhost" + display
	}
	fmt.Fprintf(env.Stdout, "Serving %s on http://%s\n", dir, display)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(env.Stderr, "server error: %v\n", err)
	}
}
