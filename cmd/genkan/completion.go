package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.toml")
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"theme": {Values: []string{"simple"}},

	// File flags with glob patterns
	"config": {FileGlob: "*.toml,*.yaml,*.yml"},

	// Directory flags
	"output":     {IsDir: true},
	"themes-dir": {IsDir: true},
	"cache-dir":  {IsDir: true},
}

// buildBuildFlagSet creates a FlagSet with all build command flags.
// This reuses the same flag registration as parseBuildFlags.
func buildBuildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.theme)
	addAssetFlags(fs, &f.assets)

	return fs
}

// buildValidateFlagSet creates a FlagSet with all validate command flags.
func buildValidateFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	f := &validateFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")

	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.theme)

	return fs
}

// buildWatchFlagSet creates a FlagSet with all watch command flags.
func buildWatchFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	f := &watchFlags{}

	fs.StringVar(&f.addr, "addr", "", "serve the output directory on this address")
	fs.StringVarP(&f.build.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.build.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.build.common)
	addThemeFlags(fs, &f.build.theme)
	addAssetFlags(fs, &f.build.assets)

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "build",
			Desc:        "Generate link pages from configs",
			Flags:       extractFlagsFromFlagSet(buildBuildFlagSet()),
			TakesFiles:  true,
			FilePattern: "*.toml,*.yaml,*.yml",
		},
		{
			Name:  "init",
			Desc:  "Scaffold a new project",
			Flags: []flagDef{{Long: "force", Type: flagBool, Desc: "overwrite an existing config file"}},
		},
		{
			Name:  "validate",
			Desc:  "Check a config without building",
			Flags: extractFlagsFromFlagSet(buildValidateFlagSet()),
		},
		{
			Name:  "watch",
			Desc:  "Rebuild on config or theme changes",
			Flags: extractFlagsFromFlagSet(buildWatchFlagSet()),
		},
		{
			Name:  "doctor",
			Desc:  "Diagnose the environment",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "output diagnostics as JSON"}, {Long: "offline", Type: flagBool, Desc: "skip the network reachability check"}},
		},
		{
			Name:  "version",
			Desc:  "Show version information",
			Flags: nil,
		},
		{
			Name:  "help",
			Desc:  "Show help for a command",
			Flags: nil,
		},
		{
			Name:  "completion",
			Desc:  "Generate shell completion script",
			Flags: nil,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()

	var names []string
	for _, c := range commands {
		names = append(names, c.Name)
	}

	fmt.Fprintln(w, "# bash completion for genkan")
	fmt.Fprintln(w, "_genkan() {")
	fmt.Fprintln(w, "    local cur prev cmd")
	fmt.Fprintln(w, "    COMPREPLY=()")
	fmt.Fprintln(w, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
	fmt.Fprintln(w, "    cmd=\"${COMP_WORDS[1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if [[ ${COMP_CWORD} -eq 1 ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(names, " "))
	fmt.Fprintln(w, "        return 0")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)

	// Per-prev value completion for enum and directory flags
	fmt.Fprintln(w, "    case \"${prev}\" in")
	for _, c := range commands {
		for _, f := range c.Flags {
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(w, "        --%s)\n", f.Long)
				fmt.Fprintf(w, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(f.Values, " "))
				fmt.Fprintln(w, "            return 0 ;;")
			case flagDir:
				fmt.Fprintf(w, "        --%s)\n", f.Long)
				fmt.Fprintln(w, "            COMPREPLY=( $(compgen -d -- \"${cur}\") )")
				fmt.Fprintln(w, "            return 0 ;;")
			case flagFile:
				fmt.Fprintf(w, "        --%s)\n", f.Long)
				fmt.Fprintln(w, "            COMPREPLY=( $(compgen -f -- \"${cur}\") )")
				fmt.Fprintln(w, "            return 0 ;;")
			}
		}
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w)

	// Per-command flag completion
	fmt.Fprintln(w, "    case \"${cmd}\" in")
	for _, c := range commands {
		if len(c.Flags) == 0 && c.Name != "completion" {
			continue
		}
		fmt.Fprintf(w, "        %s)\n", c.Name)
		if c.Name == "completion" {
			fmt.Fprintln(w, "            COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"${cur}\") )")
		} else {
			var opts []string
			for _, f := range c.Flags {
				opts = append(opts, "--"+f.Long)
				if f.Short != "" {
					opts = append(opts, "-"+f.Short)
				}
			}
			fmt.Fprintln(w, "            if [[ ${cur} == -* ]]; then")
			fmt.Fprintf(w, "                COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(opts, " "))
			if c.TakesFiles {
				fmt.Fprintln(w, "            else")
				fmt.Fprintln(w, "                COMPREPLY=( $(compgen -f -- \"${cur}\") )")
			}
			fmt.Fprintln(w, "            fi")
		}
		fmt.Fprintln(w, "            return 0 ;;")
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -F _genkan genkan")
	return nil
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "#compdef genkan")
	fmt.Fprintln(w, "# zsh completion for genkan")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_genkan() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range commands {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "        _describe 'command' commands")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case \"${words[2]}\" in")
	for _, c := range commands {
		if len(c.Flags) == 0 && c.Name != "completion" {
			continue
		}
		fmt.Fprintf(w, "        %s)\n", c.Name)
		if c.Name == "completion" {
			fmt.Fprintln(w, "            _values 'shell' bash zsh fish powershell")
		} else {
			fmt.Fprintln(w, "            _arguments \\")
			for _, f := range c.Flags {
				spec := zshArgumentSpec(f)
				fmt.Fprintf(w, "                %s \\\n", spec)
			}
			if c.TakesFiles {
				fmt.Fprintln(w, "                '*:config file:_files'")
			} else {
				fmt.Fprintln(w, "                '*::arg:->args'")
			}
		}
		fmt.Fprintln(w, "            ;;")
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_genkan \"$@\"")
	return nil
}

// zshArgumentSpec renders one flag as a zsh _arguments spec.
func zshArgumentSpec(f flagDef) string {
	desc := strings.ReplaceAll(f.Desc, "'", "'\\''")
	name := "--" + f.Long
	if f.Short != "" {
		name = fmt.Sprintf("(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	}

	switch f.Type {
	case flagBool:
		return fmt.Sprintf("'%s[%s]'", name, desc)
	case flagEnum:
		return fmt.Sprintf("'%s[%s]:value:(%s)'", name, desc, strings.Join(f.Values, " "))
	case flagDir:
		return fmt.Sprintf("'%s[%s]:directory:_directories'", name, desc)
	case flagFile:
		return fmt.Sprintf("'%s[%s]:file:_files'", name, desc)
	default:
		return fmt.Sprintf("'%s[%s]:value:'", name, desc)
	}
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "# fish completion for genkan")
	fmt.Fprintln(w, "complete -c genkan -f")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "complete -c genkan -n '__fish_use_subcommand' -a %s -d %q\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w)
	for _, c := range commands {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		if c.Name == "completion" {
			fmt.Fprintf(w, "complete -c genkan -n '%s' -a 'bash zsh fish powershell'\n", cond)
			continue
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c genkan -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
				// no argument
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -r"
			}
			line += fmt.Sprintf(" -d %q", f.Desc)
			fmt.Fprintln(w, line)
		}
		if c.TakesFiles {
			fmt.Fprintf(w, "complete -c genkan -n '%s' -F\n", cond)
		}
	}
	return nil
}

// generatePowerShell writes a PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "# PowerShell completion for genkan")
	fmt.Fprintln(w, "Register-ArgumentCompleter -Native -CommandName genkan -ScriptBlock {")
	fmt.Fprintln(w, "    param($wordToComplete, $commandAst, $cursorPosition)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    $tokens = $commandAst.CommandElements | ForEach-Object { $_.ToString() }")
	fmt.Fprintln(w, "    $command = if ($tokens.Count -gt 1) { $tokens[1] } else { '' }")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    $completions = @(")
	fmt.Fprintln(w, "        if ($tokens.Count -le 2 -and -not $command.StartsWith('-')) {")
	for _, c := range commands {
		fmt.Fprintf(w, "            [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n", c.Name, c.Name, strings.ReplaceAll(c.Desc, "'", "''"))
	}
	fmt.Fprintln(w, "        }")
	fmt.Fprintln(w, "        else {")
	fmt.Fprintln(w, "            switch ($command) {")
	for _, c := range commands {
		if len(c.Flags) == 0 && c.Name != "completion" {
			continue
		}
		fmt.Fprintf(w, "                '%s' {\n", c.Name)
		if c.Name == "completion" {
			for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
				fmt.Fprintf(w, "                    [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s shell')\n", shell, shell, shell)
			}
		} else {
			for _, f := range c.Flags {
				long := "--" + f.Long
				fmt.Fprintf(w, "                    [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')\n", long, long, strings.ReplaceAll(f.Desc, "'", "''"))
			}
		}
		fmt.Fprintln(w, "                }")
	}
	fmt.Fprintln(w, "            }")
	fmt.Fprintln(w, "        }")
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    $completions | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }")
	fmt.Fprintln(w, "}")
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genkan completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(genkan completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(genkan completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    genkan completion fish > ~/.config/fish/completions/genkan.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    genkan completion powershell | Out-String | Invoke-Expression")
}
