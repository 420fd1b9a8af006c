package trxer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewAssetLoader - Public loader over bundled and custom assets
// ---------------------------------------------------------------------------

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("bundled assets", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader(\"\") error: %v", err)
		}
		for _, name := range []string{TemplateName, SchemaName, "Trxer.css", "functions.js"} {
			content, err := loader.Load(name)
			if err != nil {
				t.Errorf("Load(%q) error: %v", name, err)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Load(%q) returned empty content", name)
			}
		}
	})

	t.Run("custom directory wins with fallback", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "Trxer.css"), []byte("body{color:teal}"), 0o644); err != nil {
			t.Fatal(err)
		}

		loader, err := NewAssetLoader(dir)
		if err != nil {
			t.Fatalf("NewAssetLoader() error: %v", err)
		}

		css, err := loader.Load("Trxer.css")
		if err != nil {
			t.Fatalf("Load(Trxer.css) error: %v", err)
		}
		if string(css) != "body{color:teal}" {
			t.Errorf("Load(Trxer.css) = %q, want custom content", css)
		}

		xsl, err := loader.Load(TemplateName)
		if err != nil {
			t.Fatalf("Load(%s) error: %v", TemplateName, err)
		}
		if !bytes.Contains(xsl, []byte("xsl:stylesheet")) {
			t.Errorf("Load(%s) should fall back to the bundled template", TemplateName)
		}
	})

	t.Run("unknown asset", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := loader.Load("missing.css"); !errors.Is(err, ErrResourceNotFound) {
			t.Errorf("Load(missing.css) error = %v, want ErrResourceNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := loader.Load("../Trxer.css"); !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("Load(../Trxer.css) error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}
