package main

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// newLogger builds the logger handed to the library. Degradation warnings
// (placeholder substitution, omitted assets, cache write failures) surface
// at Warn; --verbose lowers the floor to Debug, --quiet raises it to Error.
func newLogger(common commonFlags, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case common.quiet:
		level = slog.LevelError
	case common.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
