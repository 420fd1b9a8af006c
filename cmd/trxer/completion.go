package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/trxer/go-trxer/internal/transform"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --engine
	Short    string   // -c (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name string
	Desc string
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"engine":     {Values: transform.Engines()},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"emit-xslt":  {FileGlob: "*.xslt"},
	"xsltproc":   {FileGlob: "*"},
	"asset-path": {IsDir: true},
}

// inputGlob matches the files trxer converts.
const inputGlob = "*.trx"

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

		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

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

// getFlags returns the convert flags, read from the real FlagSet.
func getFlags() []flagDef {
	return extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "help", Desc: "Show help for a command"},
		{Name: "version", Desc: "Show version information"},
		{Name: "doctor", Desc: "Check engines, assets and environment"},
		{Name: "config", Desc: "Print the resolved configuration"},
		{Name: "completion", Desc: "Generate shell completion script"},
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
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// commandNames returns the space separated command names.
func commandNames() string {
	cmds := getCommands()
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every --long and -s form, space separated.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func generateBash(w io.Writer) error {
	flags := getFlags()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# bash completion for trxer")
	fmt.Fprintln(bw, "_trxer() {")
	fmt.Fprintln(bw, `    local cur prev`)
	fmt.Fprintln(bw, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(bw, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `    case "$prev" in`)
	for _, f := range flags {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(bw, "        %s)\n            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n            return ;;\n",
				pattern, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(bw, "        %s)\n            COMPREPLY=($(compgen -f -- \"$cur\"))\n            return ;;\n", pattern)
		case flagDir:
			fmt.Fprintf(bw, "        %s)\n            COMPREPLY=($(compgen -d -- \"$cur\"))\n            return ;;\n", pattern)
		}
	}
	fmt.Fprintln(bw, `    esac`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `    if [[ "$cur" == -* ]]; then`)
	fmt.Fprintf(bw, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flagWords(flags))
	fmt.Fprintln(bw, `        return`)
	fmt.Fprintln(bw, `    fi`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `    if [[ $COMP_CWORD -eq 1 ]]; then`)
	fmt.Fprintf(bw, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames())
	fmt.Fprintln(bw, `    fi`)
	fmt.Fprintf(bw, "    COMPREPLY+=($(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", inputGlob)
	fmt.Fprintln(bw, "}")
	fmt.Fprintln(bw, "complete -o filenames -F _trxer trxer")

	return bw.Flush()
}

// zshEscape escapes text for an _arguments description.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func generateZsh(w io.Writer) error {
	flags := getFlags()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#compdef trxer")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "_trxer() {")
	fmt.Fprintln(bw, "    local -a commands")
	fmt.Fprintln(bw, "    commands=(")
	for _, c := range getCommands() {
		fmt.Fprintf(bw, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	fmt.Fprintln(bw, "    )")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    _arguments -s \\")
	for _, f := range flags {
		action := ""
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf(":%s:_files", f.Long)
		case flagDir:
			action = fmt.Sprintf(":%s:_files -/", f.Long)
		case flagString:
			action = fmt.Sprintf(":%s:", f.Long)
		}
		desc := zshEscape(f.Desc)
		if f.Short != "" {
			fmt.Fprintf(bw, "        '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, action)
		} else {
			fmt.Fprintf(bw, "        '--%s[%s]%s' \\\n", f.Long, desc, action)
		}
	}
	fmt.Fprintln(bw, "        '1: :->first' \\")
	fmt.Fprintf(bw, "        '*:trx file:_files -g \"%s\"'\n", inputGlob)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `    if [[ $state == first ]]; then`)
	fmt.Fprintln(bw, `        _describe 'command' commands`)
	fmt.Fprintf(bw, "        _files -g \"%s\"\n", inputGlob)
	fmt.Fprintln(bw, "    fi")
	fmt.Fprintln(bw, "}")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `compdef _trxer trxer`)

	return bw.Flush()
}

func generateFish(w io.Writer) error {
	flags := getFlags()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# fish completion for trxer")
	fmt.Fprintln(bw, "complete -c trxer -f")
	for _, c := range getCommands() {
		fmt.Fprintf(bw, "complete -c trxer -n '__fish_use_subcommand' -a %s -d %q\n", c.Name, c.Desc)
	}
	fmt.Fprintf(bw, "complete -c trxer -a '(__fish_complete_suffix %s)'\n", strings.TrimPrefix(inputGlob, "*"))
	for _, f := range flags {
		line := "complete -c trxer -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagEnum:
			line += fmt.Sprintf(" -x -a %q", strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagString:
			line += " -r"
		}
		line += fmt.Sprintf(" -d %q", f.Desc)
		fmt.Fprintln(bw, line)
	}

	return bw.Flush()
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
	fmt.Fprintln(w, "Usage: trxer completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(trxer completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(trxer completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    trxer completion fish > ~/.config/fish/completions/trxer.fish")
}
