package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/trxer/go-trxer/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// noInputMessage is printed when trxer runs without arguments.
const noInputMessage = "No trx file. Usage: trxer <filename>"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command or converts the given files.
// Returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		fmt.Fprintln(env.Stdout, noInputMessage)
		fmt.Fprintln(env.Stdout)
		printUsage(env.Stdout)
		return ExitSuccess
	}

	// A file that happens to be named like a command is converted.
	first := args[1]
	if isCommand(first) && !fileutil.FileExists(first) {
		switch first {
		case "help":
			return runHelp(args[2:], env)
		case "version":
			fmt.Fprintf(env.Stdout, "trxer %s\n", Version)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[2:], env)
		case "config":
			return runConfigCmd(args[2:], env)
		case "completion":
			if err := runCompletion(args[2:], env); err != nil {
				fmt.Fprintf(env.Stderr, "error: %v\n", err)
				return exitCodeFor(err)
			}
			return ExitSuccess
		}
	}

	return runConvertCmd(args[1:], env)
}

// commands lists the subcommand names.
var commands = []string{"help", "version", "doctor", "config", "completion"}

// isCommand reports whether arg names a subcommand. Case sensitive.
func isCommand(arg string) bool {
	for _, c := range commands {
		if arg == c {
			return true
		}
	}
	return false
}

// hasVerboseFlag scans raw arguments for -v/--verbose before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
