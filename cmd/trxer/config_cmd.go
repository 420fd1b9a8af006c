package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/trxer/go-trxer/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML.
// Accepts the same flags as a conversion so their effect can be checked.
func runConfigCmd(args []string, env *Environment) int {
	flags, _, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return runHelp([]string{"config"}, env)
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if flags.help {
		return runHelp([]string{"config"}, env)
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		printError(env, err, nil)
		return exitCodeFor(err)
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitGeneral
	}
	_, _ = env.Stdout.Write(out)
	return ExitSuccess
}
