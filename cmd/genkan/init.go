package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-genkan/config"
)

// runInitCmd parses init flags and executes the command.
func runInitCmd(args []string, env *Environment) int {
	flags, positional, err := parseInitFlags(args)
	if err != nil {
		return ExitUsage
	}

	dir := "."
	if len(positional) > 0 {
		dir = positional[0]
	}

	if err := runInit(dir, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runInit scaffolds a new project: config.toml, themes/, and output/.
// An existing config is never overwritten unless --force is given; the
// themes and output directories are created regardless.
func runInit(dir string, flags *initFlags, env *Environment) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	configPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(configPath); err == nil && !flags.force {
		return fmt.Errorf("%w: %s (use --force to regenerate)", ErrConfigExists, configPath)
	}

	if err := os.WriteFile(configPath, []byte(config.ScaffoldTOML), filePermissions); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", configPath)

	for _, sub := range []string{"themes", defaultOutputDir} {
		path := filepath.Join(dir, sub)
		if err := os.MkdirAll(path, dirPermissions); err != nil {
			return fmt.Errorf("creating %s directory: %w", sub, err)
		}
		fmt.Fprintf(env.Stdout, "Created %s%c\n", path, os.PathSeparator)
	}

	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Next steps:")
	fmt.Fprintln(env.Stdout, "  1. Edit config.toml with your name and links")
	fmt.Fprintln(env.Stdout, "  2. Run `genkan build` to generate the page")
	fmt.Fprintf(env.Stdout, "  3. Open %s in a browser\n", filepath.Join(defaultOutputDir, defaultOutputName))

	return nil
}
