package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   *FilesystemLoader // nil if no custom path configured
	embedded *FSLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load reads an asset, trying the custom directory first if available.
func (r *AssetResolver) Load(name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.Load(name)
	}

	content, err := r.custom.Load(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !errors.Is(err, ErrAssetNotFound) {
		return nil, err
	}

	return r.embedded.Load(name)
}

// LoadText reads an asset as text with the same fallback as Load.
func (r *AssetResolver) LoadText(name string) (string, error) {
	content, err := r.Load(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// FS returns a filesystem view with the same custom-first fallback.
func (r *AssetResolver) FS() (fs.FS, error) {
	return resolverFS{r: r}, nil
}

// HasCustomLoader returns true if a custom asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// resolverFS adapts AssetResolver to fs.FS for consumers that take a
// filesystem, such as the schema compiler.
type resolverFS struct {
	r *AssetResolver
}

func (f resolverFS) Open(name string) (fs.File, error) {
	if f.r.custom != nil {
		customFS, err := f.r.custom.FS()
		if err != nil {
			return nil, err
		}
		file, err := customFS.Open(name)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	embeddedFS, err := f.r.embedded.FS()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return embeddedFS.Open(name)
}

