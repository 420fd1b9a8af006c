package transform

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for transform operations.
var (
	// ErrCompile indicates the stylesheet could not be compiled.
	ErrCompile = errors.New("failed to compile stylesheet")

	// ErrTransform indicates the input could not be transformed: it is
	// missing, unreadable, not well-formed, or rejected by the stylesheet.
	ErrTransform = errors.New("failed to transform input")

	// ErrWriteOutput indicates the generated report could not be written.
	ErrWriteOutput = errors.New("failed to write output")

	// ErrEngineUnavailable indicates the selected engine cannot run here,
	// e.g. the xsltproc binary is not installed.
	ErrEngineUnavailable = errors.New("transform engine unavailable")

	// ErrUnknownEngine indicates an engine name that is not registered.
	ErrUnknownEngine = errors.New("unknown transform engine")
)

// Engine names.
const (
	EngineLibXSLT  = "libxslt"
	EngineXSLTProc = "xsltproc"

	// DefaultEngine is used when no engine is configured.
	DefaultEngine = EngineLibXSLT
)

// Engine compiles XSLT stylesheets.
type Engine interface {
	// Name returns the registered engine name.
	Name() string

	// Compile prepares xsl for repeated use.
	// Returns ErrCompile if the stylesheet is malformed.
	Compile(ctx context.Context, xsl []byte) (Stylesheet, error)
}

// Stylesheet is a compiled stylesheet ready to be applied.
type Stylesheet interface {
	// Transform applies the stylesheet to an XML document and returns the
	// serialized result. Returns ErrTransform on failure.
	Transform(ctx context.Context, xml []byte) ([]byte, error)

	// Close releases resources held by the compiled stylesheet.
	Close() error
}

// Options configures engine construction.
type Options struct {
	// XSLTProcPath overrides the xsltproc binary (default: looked up in PATH).
	XSLTProcPath string

	// Runner overrides command execution for the xsltproc engine.
	Runner CommandRunner
}

// NewEngine returns the engine registered under name. An empty name selects
// DefaultEngine. Returns ErrUnknownEngine for any other name.
func NewEngine(name string, opts Options) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineLibXSLT:
		return NewLibXSLT(), nil
	case EngineXSLTProc:
		return NewXSLTProc(opts.XSLTProcPath, opts.Runner), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(Engines(), ", "))
	}
}

// Engines lists the registered engine names in sorted order.
func Engines() []string {
	names := []string{EngineLibXSLT, EngineXSLTProc}
	sort.Strings(names)
	return names
}
