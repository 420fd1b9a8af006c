package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: trxer [flags] <file.trx>...")
	fmt.Fprintln(w, "       trxer <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Visual Studio test results (TRX) into self-contained HTML reports.")
	fmt.Fprintln(w, "Each report is written next to its input as <file>.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  doctor      Check XSLT engines and bundled assets")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --engine <name>       XSLT engine: libxslt (default), xsltproc")
	fmt.Fprintln(w, "      --xsltproc <path>     xsltproc binary (default: from PATH)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding the bundled template, CSS and JS")
	fmt.Fprintln(w, "      --validate            Check input against the TRX schema first")
	fmt.Fprintln(w, "      --emit-xslt <path>    Also write the merged stylesheet to path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and a summary of each report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TRXER_CONFIG, TRXER_ENGINE, TRXER_XSLTPROC, TRXER_ASSET_PATH, TRXER_VALIDATE")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'trxer help <command>' for details on a specific command.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: trxer version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: trxer help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: trxer doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that the XSLT engines work and the bundled template merges.")
		fmt.Fprintln(env.Stdout, "Exits 1 when the configured engine or the template is unusable.")
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: trxer config [-c <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration after applying the config file,")
		fmt.Fprintln(env.Stdout, "TRXER_* environment variables and flags.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
