package transform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/trxer/go-trxer/internal/fileutil"
)

// xsltproc exit statuses that mean the stylesheet itself is at fault:
// 4 = failed to parse the stylesheet, 5 = error in the stylesheet,
// 7 = unsupported xsl:output method.
var xsltprocCompileCodes = map[int]bool{4: true, 5: true, 7: true}

// compileProbe is fed to xsltproc at compile time so stylesheet errors
// surface before any real input is processed.
const compileProbe = `<?xml version="1.0"?><probe/>`

// exitCoder is satisfied by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// XSLTProc runs stylesheets through the xsltproc command.
type XSLTProc struct {
	path   string
	runner CommandRunner
}

// NewXSLTProc creates the xsltproc engine. An empty path looks up
// "xsltproc" in PATH at compile time; a nil runner uses ExecRunner.
func NewXSLTProc(path string, runner CommandRunner) *XSLTProc {
	if runner == nil {
		runner = &ExecRunner{}
	}
	return &XSLTProc{path: path, runner: runner}
}

// Name returns "xsltproc".
func (e *XSLTProc) Name() string {
	return EngineXSLTProc
}

// LookPath resolves the xsltproc binary.
// Returns ErrEngineUnavailable if it cannot be found.
func (e *XSLTProc) LookPath() (string, error) {
	name := e.path
	if name == "" {
		name = EngineXSLTProc
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEngineUnavailable, name, err)
	}
	return bin, nil
}

// Compile writes xsl to a temp file and checks that xsltproc accepts it.
func (e *XSLTProc) Compile(ctx context.Context, xsl []byte) (Stylesheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(xsl) == 0 {
		return nil, fmt.Errorf("%w: empty stylesheet", ErrCompile)
	}

	bin, err := e.LookPath()
	if err != nil {
		return nil, err
	}

	sheetPath, cleanup, err := fileutil.WriteTempFile(xsl, "xslt")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	sheet := &procStylesheet{bin: bin, sheetPath: sheetPath, cleanup: cleanup, runner: e.runner}

	_, stderr, err := e.runner.Run(ctx, []byte(compileProbe), bin, sheetPath, "-")
	if err != nil {
		if ctx.Err() != nil {
			sheet.Close()
			return nil, ctx.Err()
		}
		var coder exitCoder
		if !errors.As(err, &coder) {
			sheet.Close()
			return nil, fmt.Errorf("%w: running %s: %v", ErrEngineUnavailable, bin, err)
		}
		if xsltprocCompileCodes[coder.ExitCode()] {
			sheet.Close()
			return nil, fmt.Errorf("%w: %s", ErrCompile, describe(err, stderr))
		}
		// Other statuses come from the probe document not matching the
		// stylesheet's expectations, which is not a compile failure.
	}

	return sheet, nil
}

// procStylesheet is a stylesheet stored in a temp file for xsltproc.
type procStylesheet struct {
	bin       string
	sheetPath string
	runner    CommandRunner

	once    sync.Once
	cleanup func()
}

func (s *procStylesheet) Transform(ctx context.Context, xml []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stdout, stderr, err := s.runner.Run(ctx, xml, s.bin, s.sheetPath, "-")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var coder exitCoder
		if errors.As(err, &coder) && xsltprocCompileCodes[coder.ExitCode()] {
			return nil, fmt.Errorf("%w: %s", ErrCompile, describe(err, stderr))
		}
		return nil, fmt.Errorf("%w: %s", ErrTransform, describe(err, stderr))
	}

	return stdout, nil
}

func (s *procStylesheet) Close() error {
	s.once.Do(s.cleanup)
	return nil
}

// describe prefers xsltproc's own diagnostics over the bare exit status.
func describe(err error, stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return err.Error()
	}
	return msg
}
