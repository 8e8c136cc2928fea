package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/hints"
	"github.com/alnah/go-genkan/internal/theme"
)

// networkProbeURL is the host checked for reachability. The init scaffold
// references it, so a fresh project needs it resolvable.
const networkProbeURL = "https://cdn.simpleicons.org"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Config   configInfo  `json:"config"`
	Themes   themeInfo   `json:"themes"`
	Cache    cacheInfo   `json:"cache"`
	Network  networkInfo `json:"network"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// configInfo holds config discovery results.
type configInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// themeInfo holds theme resolution results.
type themeInfo struct {
	Embedded  []string `json:"embedded"`
	CustomDir string   `json:"custom_dir,omitempty"`
	Custom    []string `json:"custom,omitempty"`
}

// cacheInfo holds asset cache check results.
type cacheInfo struct {
	Dir      string `json:"dir,omitempty"`
	Writable bool   `json:"writable"`
}

// networkInfo holds reachability check results.
type networkInfo struct {
	Checked   bool   `json:"checked"`
	Reachable bool   `json:"reachable"`
	Probe     string `json:"probe,omitempty"`
}

// systemInfo holds platform detection results.
type systemInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	TempWritable  bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if err != nil {
		return ExitUsage
	}

	result := runDoctor(flags.offline)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(offline bool) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkConfig(result)
	checkThemes(result)
	checkCache(result)
	checkNetwork(result, offline)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig runs config discovery in the working directory.
func checkConfig(result *doctorResult) {
	path, err := config.Discover(".")
	if err != nil {
		result.Warnings = append(result.Warnings,
			"No config file found. Run `genkan init` to scaffold one")
		return
	}

	result.Config.Found = true
	result.Config.Path = path

	if _, err := config.Load(path); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Config does not validate: %v", err))
	}
}

// checkThemes verifies embedded themes load and inspects the custom dir.
func checkThemes(result *doctorResult) {
	embedded := theme.NewEmbeddedLoader()
	result.Themes.Embedded = embedded.Names()
	if len(result.Themes.Embedded) == 0 {
		result.Errors = append(result.Errors,
			"No embedded themes found; the binary is broken")
		return
	}
	for _, name := range result.Themes.Embedded {
		if _, err := embedded.Load(name); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Embedded theme %q does not load: %v", name, err))
		}
	}

	dir := resolveThemesDir("")
	if dir == "" {
		return
	}
	result.Themes.CustomDir = dir

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Custom themes directory unreadable: %v", err))
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			result.Themes.Custom = append(result.Themes.Custom, e.Name())
		}
	}
}

// checkCache verifies the asset cache directory can be created and written.
func checkCache(result *doctorResult) {
	dir := resolveCacheDir(assetFlags{})
	if dir == "" {
		result.Warnings = append(result.Warnings,
			"No user cache directory; remote assets are fetched on every build")
		return
	}
	result.Cache.Dir = dir

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Cache directory not writable: %s", dir))
		return
	}
	probe := filepath.Join(dir, "doctor-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o600); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Cache directory not writable: %s", dir))
		return
	}
	_ = os.Remove(probe)
	result.Cache.Writable = true
}

// checkNetwork probes a host the scaffold depends on. Skipped offline;
// unreachable is a warning since builds degrade to placeholders.
func checkNetwork(result *doctorResult, offline bool) {
	if offline {
		return
	}

	result.Network.Checked = true
	result.Network.Probe = networkProbeURL

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Head(networkProbeURL)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Network unreachable: %v", err))
		return
	}
	_ = resp.Body.Close()
	result.Network.Reachable = true
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	result.System.Container, result.System.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.System.CI = true
			break
		}
	}

	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "genkan-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("GENKAN_CONTAINER") == "1" {
		return true, "GENKAN_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "genkan doctor")
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Config")
	if r.Config.Found {
		fmt.Fprintf(w, "  [OK] Found %s\n", r.Config.Path)
	} else {
		fmt.Fprintln(w, "  [WARN] No config file found")
	}
	fmt.Fprintln(w)

	// Themes section
	fmt.Fprintln(w, "Themes")
	if len(r.Themes.Embedded) > 0 {
		fmt.Fprintf(w, "  [OK] Built-in: %s\n", strings.Join(r.Themes.Embedded, ", "))
	} else {
		fmt.Fprintln(w, "  [ERROR] No built-in themes")
	}
	if r.Themes.CustomDir != "" {
		fmt.Fprintf(w, "  [OK] Custom directory: %s (%d theme(s))\n", r.Themes.CustomDir, len(r.Themes.Custom))
	}
	fmt.Fprintln(w)

	// Cache section
	fmt.Fprintln(w, "Cache")
	if r.Cache.Writable {
		fmt.Fprintf(w, "  [OK] Directory: %s\n", r.Cache.Dir)
	} else {
		fmt.Fprintln(w, "  [WARN] Asset cache unavailable")
	}
	fmt.Fprintln(w)

	// Network section
	fmt.Fprintln(w, "Network")
	switch {
	case !r.Network.Checked:
		fmt.Fprintln(w, "  [OK] Skipped (--offline)")
	case r.Network.Reachable:
		fmt.Fprintf(w, "  [OK] Reachable (%s)\n", r.Network.Probe)
	default:
		fmt.Fprintf(w, "  [WARN] Unreachable (%s)%s\n", r.Network.Probe, hints.ForAssetFetch())
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	if r.System.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.System.ContainerHint)
	}
	if r.System.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
