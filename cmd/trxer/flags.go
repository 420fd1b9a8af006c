package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags select and locate the XSLT engine.
type engineFlags struct {
	name     string
	xsltproc string
}

// convertFlags holds all flags of the default (convert) command.
type convertFlags struct {
	common    commonFlags
	engine    engineFlags
	assetPath string
	validate  bool
	emitXSLT  string
	help      bool

	// changed records flags set on the command line, so only those
	// override env and config values.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and report summary")
}

// addEngineFlags adds XSLT engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.name, "engine", "", "XSLT engine: libxslt, xsltproc")
	fs.StringVar(&f.xsltproc, "xsltproc", "", "xsltproc binary (default: from PATH)")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
// Shared by parsing and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("trxer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding bundled template, CSS and JS")
	fs.BoolVar(&f.validate, "validate", false, "check input against the TRX schema")
	fs.StringVar(&f.emitXSLT, "emit-xslt", "", "write the merged stylesheet to path")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	return fs
}

// parseConvertFlags parses convert flags and returns the positional files.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{changed: map[string]bool{}}
	fs := newConvertFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
