package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without editing flags or configs.
type envConfig struct {
	ConfigPath string        // GENKAN_CONFIG: config file path
	Theme      string        // GENKAN_THEME: theme name
	ThemesDir  string        // GENKAN_THEMES_DIR: custom themes directory
	Output     string        // GENKAN_OUTPUT: output file or directory
	CacheDir   string        // GENKAN_CACHE_DIR: asset cache directory
	Timeout    time.Duration // GENKAN_TIMEOUT: remote fetch timeout
	Workers    int           // GENKAN_WORKERS: parallel workers
	Offline    bool          // GENKAN_OFFLINE: skip network fetches
}

// knownEnvVars lists valid GENKAN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"GENKAN_CONFIG":     true,
	"GENKAN_THEME":      true,
	"GENKAN_THEMES_DIR": true,
	"GENKAN_OUTPUT":     true,
	"GENKAN_CACHE_DIR":  true,
	"GENKAN_TIMEOUT":    true,
	"GENKAN_WORKERS":    true,
	"GENKAN_OFFLINE":    true,
	"GENKAN_CONTAINER":  true, // read by doctor's container detection
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized GENKAN_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("GENKAN_CONFIG"),
		Theme:      os.Getenv("GENKAN_THEME"),
		ThemesDir:  os.Getenv("GENKAN_THEMES_DIR"),
		Output:     os.Getenv("GENKAN_OUTPUT"),
		CacheDir:   os.Getenv("GENKAN_CACHE_DIR"),
	}

	if timeout := os.Getenv("GENKAN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("GENKAN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if offline := os.Getenv("GENKAN_OFFLINE"); offline != "" {
		if b, err := strconv.ParseBool(offline); err == nil {
			cfg.Offline = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized GENKAN_* variables.
// Helps catch typos like GENKAN_THEMES instead of GENKAN_THEMES_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "GENKAN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to build flags.
// Only sets values the user did not pass explicitly, so the precedence
// is: CLI flags > env vars > defaults.
func applyEnvConfig(env *envConfig, f *buildFlags) {
	if env.Theme != "" && f.theme.name == "" {
		f.theme.name = env.Theme
	}
	if env.ThemesDir != "" && f.theme.themesDir == "" {
		f.theme.themesDir = env.ThemesDir
	}
	if env.Output != "" && f.output == "" {
		f.output = env.Output
	}
	if env.CacheDir != "" && f.assets.cacheDir == "" {
		f.assets.cacheDir = env.CacheDir
	}
	if env.Timeout > 0 && f.assets.timeout == "" {
		f.assets.timeout = env.Timeout.String()
	}
	if env.Workers > 0 && f.workers == 0 {
		f.workers = env.Workers
	}
	if env.Offline && !f.assets.offline {
		f.assets.offline = true
	}
}
