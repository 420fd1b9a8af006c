package main

// Notes:
// - loadEnvSettings: we test every TRXER_* variable and the warning for an
//   unparsable boolean.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - resolveConfig: we test precedence flags > env > config file > defaults.
// - Tests use t.Setenv() which prevents t.Parallel().
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trxer/go-trxer/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvSettings - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvSettings(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv(envConfig, "/etc/trxer.yaml")
		t.Setenv(envEngine, "xsltproc")
		t.Setenv(envXSLTProc, "/opt/bin/xsltproc")
		t.Setenv(envAssetPath, "/srv/assets")
		t.Setenv(envValidate, "true")

		var warn bytes.Buffer
		s := loadEnvSettings(&warn)

		if s.ConfigPath != "/etc/trxer.yaml" {
			t.Errorf("ConfigPath = %q, want /etc/trxer.yaml", s.ConfigPath)
		}
		if s.Engine != "xsltproc" {
			t.Errorf("Engine = %q, want xsltproc", s.Engine)
		}
		if s.XSLTProc != "/opt/bin/xsltproc" {
			t.Errorf("XSLTProc = %q, want /opt/bin/xsltproc", s.XSLTProc)
		}
		if s.AssetPath != "/srv/assets" {
			t.Errorf("AssetPath = %q, want /srv/assets", s.AssetPath)
		}
		if s.Validate == nil || !*s.Validate {
			t.Errorf("Validate = %v, want true", s.Validate)
		}
		if warn.Len() != 0 {
			t.Errorf("unexpected warning: %q", warn.String())
		}
	})

	t.Run("validate false", func(t *testing.T) {
		t.Setenv(envValidate, "0")

		s := loadEnvSettings(&bytes.Buffer{})
		if s.Validate == nil || *s.Validate {
			t.Errorf("Validate = %v, want false", s.Validate)
		}
	})

	t.Run("unparsable validate is ignored with warning", func(t *testing.T) {
		t.Setenv(envValidate, "sometimes")

		var warn bytes.Buffer
		s := loadEnvSettings(&warn)

		if s.Validate != nil {
			t.Errorf("Validate = %v, want nil", *s.Validate)
		}
		if !strings.Contains(warn.String(), envValidate) {
			t.Errorf("warning should name %s, got %q", envValidate, warn.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable warns", func(t *testing.T) {
		t.Setenv("TRXER_ENGIN", "xsltproc")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "TRXER_ENGIN") {
			t.Errorf("expected warning for TRXER_ENGIN, got %q", buf.String())
		}
	})

	t.Run("known variables do not warn", func(t *testing.T) {
		for name := range knownEnvVars {
			t.Setenv(name, "x")
		}

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if buf.Len() != 0 {
			t.Errorf("unexpected warnings: %q", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveConfig - Precedence of flags, env, config file and defaults
// ---------------------------------------------------------------------------

// writeConfig writes a config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trxer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// parseFlags parses args as convert flags or fails the test.
func parseFlags(t *testing.T, args ...string) *convertFlags {
	t.Helper()
	f, _, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags(%v) error: %v", args, err)
	}
	return f
}

func TestResolveConfig(t *testing.T) {
	fileConfig := "engine:\n  name: xsltproc\n  xsltprocPath: /from/file\nvalidate:\n  enabled: true\n"

	t.Run("defaults", func(t *testing.T) {
		env, _, _ := testEnv()
		cfg, err := resolveConfig(parseFlags(t), env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Engine.Name != "libxslt" {
			t.Errorf("Engine.Name = %q, want libxslt", cfg.Engine.Name)
		}
		if cfg.Validate.Enabled {
			t.Error("Validate.Enabled should default to false")
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := writeConfig(t, fileConfig)
		env, _, _ := testEnv()

		cfg, err := resolveConfig(parseFlags(t, "--config", path), env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Engine.Name != "xsltproc" || cfg.Engine.XSLTProcPath != "/from/file" {
			t.Errorf("Engine = %+v, want values from file", cfg.Engine)
		}
		if !cfg.Validate.Enabled {
			t.Error("Validate.Enabled should come from file")
		}
	})

	t.Run("config from env variable", func(t *testing.T) {
		t.Setenv(envConfig, writeConfig(t, fileConfig))
		env, _, _ := testEnv()

		cfg, err := resolveConfig(parseFlags(t), env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Engine.Name != "xsltproc" {
			t.Errorf("Engine.Name = %q, want xsltproc", cfg.Engine.Name)
		}
	})

	t.Run("env overrides config file", func(t *testing.T) {
		t.Setenv(envXSLTProc, "/from/env")
		t.Setenv(envValidate, "false")
		env, _, _ := testEnv()

		cfg, err := resolveConfig(parseFlags(t, "-c", writeConfig(t, fileConfig)), env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Engine.XSLTProcPath != "/from/env" {
			t.Errorf("XSLTProcPath = %q, want /from/env", cfg.Engine.XSLTProcPath)
		}
		if cfg.Validate.Enabled {
			t.Error("Validate.Enabled should be overridden by env")
		}
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv(envEngine, "xsltproc")
		t.Setenv(envAssetPath, "/from/env")
		env, _, _ := testEnv()

		cfg, err := resolveConfig(parseFlags(t, "--engine", "libxslt", "--asset-path", "/from/flag", "--validate"), env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Engine.Name != "libxslt" {
			t.Errorf("Engine.Name = %q, want libxslt", cfg.Engine.Name)
		}
		if cfg.Assets.BasePath != "/from/flag" {
			t.Errorf("Assets.BasePath = %q, want /from/flag", cfg.Assets.BasePath)
		}
		if !cfg.Validate.Enabled {
			t.Error("Validate.Enabled should be set by flag")
		}
	})

	t.Run("unset flags keep env values", func(t *testing.T) {
		t.Setenv(envEngine, "xsltproc")
		env, _, _ := testEnv()

		cfg, err := resolveConfig(parseFlags(t, "-q"), env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Engine.Name != "xsltproc" {
			t.Errorf("Engine.Name = %q, want xsltproc", cfg.Engine.Name)
		}
	})

	t.Run("invalid engine from env", func(t *testing.T) {
		t.Setenv(envEngine, "saxon")
		env, _, _ := testEnv()

		_, err := resolveConfig(parseFlags(t), env)
		if !errors.Is(err, config.ErrInvalidEngine) {
			t.Errorf("error = %v, want ErrInvalidEngine", err)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		env, _, _ := testEnv()
		missing := filepath.Join(t.TempDir(), "missing.yaml")

		_, err := resolveConfig(parseFlags(t, "-c", missing), env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}
