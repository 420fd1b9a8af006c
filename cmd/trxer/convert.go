package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	trxer "github.com/trxer/go-trxer"
	"github.com/trxer/go-trxer/internal/config"
	"github.com/trxer/go-trxer/internal/fileutil"
	"github.com/trxer/go-trxer/internal/hints"
	"github.com/trxer/go-trxer/internal/report"
	"github.com/trxer/go-trxer/internal/schema"
)

// ErrWriteStylesheet indicates --emit-xslt could not write its file.
var ErrWriteStylesheet = errors.New("failed to write merged stylesheet")

// runConvertCmd converts each file in args in order and stops at the first
// failure. Returns the process exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, files, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		printError(env, err, nil)
		return exitCodeFor(err)
	}

	if len(files) == 0 && flags.emitXSLT == "" {
		fmt.Fprintln(env.Stdout, noInputMessage)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := convertFiles(ctx, files, flags, cfg, env); err != nil {
		printError(env, err, cfg)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// convertFiles runs the conversions with one shared converter.
func convertFiles(ctx context.Context, files []string, flags *convertFlags, cfg *config.Config, env *Environment) error {
	opts := []trxer.Option{
		trxer.WithEngine(cfg.Engine.Name),
		trxer.WithXSLTProcPath(cfg.Engine.XSLTProcPath),
		trxer.WithAssetPath(cfg.Assets.BasePath),
		trxer.WithValidation(cfg.Validate.Enabled),
	}
	if !flags.common.quiet {
		opts = append(opts, trxer.WithProgress(env.Stdout))
	}

	conv, err := trxer.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer conv.Close()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Engine: %s\n", conv.EngineName())
	}

	if flags.emitXSLT != "" {
		if err := emitStylesheet(ctx, conv, flags.emitXSLT); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Merged stylesheet written to %s\n", flags.emitXSLT)
		}
	}

	for _, file := range files {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Trx File\n%s\n", file)
		}

		start := env.now()
		out, err := conv.ConvertFile(ctx, file)
		if err != nil {
			return err
		}

		if flags.common.verbose {
			printSummary(env, out, env.now().Sub(start))
		}
	}

	return nil
}

// emitStylesheet writes the merged stylesheet to path.
func emitStylesheet(ctx context.Context, conv *trxer.Converter, path string) error {
	xsl, err := conv.MergedStylesheet(ctx)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, xsl, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStylesheet, err)
	}
	return nil
}

// printSummary reports where a report went and what it contains.
func printSummary(env *Environment, out string, elapsed time.Duration) {
	fmt.Fprintf(env.Stderr, "Wrote %s in %s\n", out, elapsed.Round(time.Millisecond))

	summary, err := report.InspectFile(out)
	if err != nil {
		// Custom templates may not carry a summary section.
		fmt.Fprintf(env.Stderr, "  (no summary: %v)\n", err)
		return
	}
	fmt.Fprintf(env.Stderr, "  %s\n", summary)
	for _, name := range summary.FailedTests {
		fmt.Fprintf(env.Stderr, "  FAILED %s\n", name)
	}
}

// printError writes err to stderr with a hint when one applies.
// cfg is nil when the failure happened before configuration was resolved.
func printError(env *Environment, err error, cfg *config.Config) {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, cfg))
}

// hintFor picks the hint matching err.
func hintFor(err error, cfg *config.Config) string {
	engine := ""
	customAssets := false
	if cfg != nil {
		engine = cfg.Engine.Name
		customAssets = cfg.Assets.BasePath != ""
	}

	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, trxer.ErrEngine):
		return hints.ForEngineUnavailable(engine)
	case errors.Is(err, trxer.ErrInvalidAssetPath):
		return hints.ForAssetPath()
	case errors.Is(err, trxer.ErrCompile):
		return hints.ForCompile(customAssets)
	case errors.Is(err, schema.ErrInvalidInput):
		return hints.ForInvalidInput()
	case errors.Is(err, trxer.ErrTransform) && errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound()
	default:
		return ""
	}
}
