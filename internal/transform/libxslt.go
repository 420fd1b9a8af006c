package transform

import (
	"context"
	"fmt"
	"sync"

	"github.com/wamuir/go-xslt"
)

// LibXSLT compiles stylesheets in-process with libxslt.
type LibXSLT struct{}

// NewLibXSLT creates the libxslt engine.
func NewLibXSLT() *LibXSLT {
	return &LibXSLT{}
}

// Name returns "libxslt".
func (e *LibXSLT) Name() string {
	return EngineLibXSLT
}

// Compile parses xsl with libxslt.
func (e *LibXSLT) Compile(ctx context.Context, xsl []byte) (Stylesheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(xsl) == 0 {
		return nil, fmt.Errorf("%w: empty stylesheet", ErrCompile)
	}

	sheet, err := xslt.NewStylesheet(xsl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: libxslt returned no stylesheet", ErrCompile)
	}

	return &libxsltStylesheet{sheet: sheet}, nil
}

// libxsltStylesheet wraps a compiled libxslt stylesheet. The C handle is
// freed by Close; the mutex keeps Transform from racing with it.
type libxsltStylesheet struct {
	mu    sync.Mutex
	sheet *xslt.Stylesheet
}

func (s *libxsltStylesheet) Transform(ctx context.Context, xml []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheet == nil {
		return nil, fmt.Errorf("%w: stylesheet is closed", ErrTransform)
	}

	out, err := s.sheet.Transform(xml)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}
	return out, nil
}

func (s *libxsltStylesheet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheet != nil {
		s.sheet.Close()
		s.sheet = nil
	}
	return nil
}
