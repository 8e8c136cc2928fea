package main

import (
	"fmt"

	genkan "github.com/alnah/go-genkan"
	"github.com/alnah/go-genkan/config"
)

// runValidateCmd parses validate flags and executes the command.
func runValidateCmd(args []string, env *Environment) int {
	flags, _, err := parseValidateFlags(args)
	if err != nil {
		return ExitUsage
	}

	if err := runValidate(flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runValidate checks a config without network or asset work: parsing,
// field validation, link rules, theme resolution, and template parsing.
func runValidate(flags *validateFlags, env *Environment) error {
	path := flags.config
	if path == "" {
		found, err := config.Discover(".")
		if err != nil {
			return err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	opts := []genkan.Option{genkan.WithLogger(newLogger(flags.common, env.Stderr))}
	if dir := resolveThemesDir(flags.theme.themesDir); dir != "" {
		opts = append(opts, genkan.WithThemesDir(dir))
	}
	builder, err := genkan.NewBuilder(opts...)
	if err != nil {
		return err
	}

	if flags.theme.name != "" {
		cfg.Theme.Name = flags.theme.name
	}

	if err := builder.Validate(cfg); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Configuration is valid")
		fmt.Fprintf(env.Stdout, "Theme: %s\n", cfg.Theme.Name)
		fmt.Fprintf(env.Stdout, "%d link(s) configured\n", len(cfg.Links))
	}

	return nil
}
