package trxer

import (
	"io"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds settings collected from options.
type converterConfig struct {
	assetPath    string
	engineName   string
	xsltprocPath string
	validate     bool
	progress     io.Writer
}

// WithAssetPath reads assets from dir, falling back to the bundled copies
// for files the directory does not contain.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath. Schema validation keeps using the bundled schema.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithEngine selects the XSLT engine by name: "libxslt" (default) or "xsltproc".
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engineName = name
	}
}

// WithXSLTProcPath sets the xsltproc binary used by the "xsltproc" engine.
// By default xsltproc is looked up in PATH.
func WithXSLTProcPath(path string) Option {
	return func(c *Converter) {
		c.cfg.xsltprocPath = path
	}
}

// WithValidation enables checking each input against the bundled TRX
// schema before it is transformed.
func WithValidation(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.validate = enabled
	}
}

// WithProgress writes progress messages ("Loading css...", "Transforming...")
// to w. Nil disables progress output.
func WithProgress(w io.Writer) Option {
	return func(c *Converter) {
		c.cfg.progress = w
	}
}
