package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	genkan "github.com/alnah/go-genkan"
	"github.com/alnah/go-genkan/config"
	"github.com/alnah/go-genkan/internal/hints"
	"github.com/alnah/go-genkan/internal/theme"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// hasVerboseFlag scans raw args before command dispatch; flag parsing
// happens per command, but GOMAXPROCS logging is decided here.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// run dispatches to a command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "build":
		return runBuildCmd(rest, env)
	case "init":
		return runInitCmd(rest, env)
	case "validate":
		return runValidateCmd(rest, env)
	case "watch":
		return runWatchCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "genkan %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// errorHint returns an actionable suggestion for known failures, formatted
// for appending to the error message.
func errorHint(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchOrder)
	case errors.Is(err, genkan.ErrThemeNotFound):
		return hints.ForThemeNotFound(theme.NewEmbeddedLoader().Names())
	case errors.Is(err, genkan.ErrIncompleteTheme):
		return hints.ForIncompleteTheme()
	case errors.Is(err, genkan.ErrAssetCorrupt):
		return hints.ForCorruptAsset()
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	}
	return ""
}
