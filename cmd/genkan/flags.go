package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// themeFlags holds theme selection flags.
type themeFlags struct {
	name      string
	themesDir string
}

// assetFlags holds asset pipeline flags.
type assetFlags struct {
	cacheDir string
	noCache  bool
	offline  bool
	timeout  string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	theme   themeFlags
	assets  assetFlags
	output  string
	workers int
}

// validateFlags holds flags for the validate command.
type validateFlags struct {
	common commonFlags
	theme  themeFlags
	config string
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	build buildFlags
	addr  string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json    bool
	offline bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug detail and timing")
}

// addThemeFlags adds theme selection flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.name, "theme", "", "theme name (overrides config)")
	fs.StringVar(&f.themesDir, "themes-dir", "", "custom themes directory")
}

// addAssetFlags adds asset pipeline flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.cacheDir, "cache-dir", "", "asset cache directory")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the asset cache")
	fs.BoolVar(&f.offline, "offline", false, "skip network fetches; degrade to placeholders")
	fs.StringVar(&f.timeout, "timeout", "", "remote fetch timeout (e.g., 10s, 1m)")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.theme)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseValidateFlags parses validate command flags.
func parseValidateFlags(args []string) (*validateFlags, []string, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	f := &validateFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")

	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.theme)

	fs.Usage = func() { printValidateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}

	fs.BoolVar(&f.force, "force", false, "overwrite an existing config file")

	fs.Usage = func() { printInitUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string) (*watchFlags, []string, error) {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	f := &watchFlags{}

	fs.StringVar(&f.addr, "addr", "", "serve the output directory on this address (e.g., :8080)")
	fs.StringVarP(&f.build.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.build.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.build.common)
	addThemeFlags(fs, &f.build.theme)
	addAssetFlags(fs, &f.build.assets)

	fs.Usage = func() { printWatchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "output diagnostics as JSON")
	fs.BoolVar(&f.offline, "offline", false, "skip the network reachability check")

	fs.Usage = func() { printDoctorUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
