//go:build integration

package transform

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func requireXSLTProc(t *testing.T) *XSLTProc {
	t.Helper()

	engine := NewXSLTProc("", nil)
	if _, err := engine.LookPath(); err != nil {
		t.Skipf("xsltproc not installed: %v", err)
	}
	return engine
}

func TestXSLTProcIntegration_Transform(t *testing.T) {
	engine := requireXSLTProc(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sheet, err := engine.Compile(ctx, []byte(identityXSL))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	defer sheet.Close()

	out, err := sheet.Transform(ctx, []byte(sampleXML))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if !strings.Contains(string(out), "nightly") {
		t.Errorf("Transform() output = %q, want run name", out)
	}

	if _, err := sheet.Transform(ctx, []byte("<run")); !errors.Is(err, ErrTransform) {
		t.Errorf("Transform(malformed) error = %v, want ErrTransform", err)
	}
}

func TestXSLTProcIntegration_CompileError(t *testing.T) {
	engine := requireXSLTProc(t)

	bad := `<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">` +
		`<xsl:template match="/"><xsl:value-of select="]["/></xsl:template></xsl:stylesheet>`

	_, err := engine.Compile(context.Background(), []byte(bad))
	if !errors.Is(err, ErrCompile) {
		t.Errorf("Compile() error = %v, want ErrCompile", err)
	}
}
