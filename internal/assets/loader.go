package assets

import "io/fs"

// AssetLoader defines the contract for reading bundled assets by name.
// Implementations may load from embedded files, a directory on disk, etc.
type AssetLoader interface {
	// Load returns the raw bytes of the named asset.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	Load(name string) ([]byte, error)

	// LoadText returns the named asset decoded as text.
	LoadText(name string) (string, error)
}

// FSProvider is implemented by loaders that can expose their assets as an
// fs.FS, for consumers that resolve relative references themselves.
type FSProvider interface {
	FS() (fs.FS, error)
}

// Compile-time interface checks.
var (
	_ AssetLoader = (*FSLoader)(nil)
	_ AssetLoader = (*FilesystemLoader)(nil)
	_ AssetLoader = (*AssetResolver)(nil)
	_ FSProvider  = (*FSLoader)(nil)
	_ FSProvider  = (*FilesystemLoader)(nil)
	_ FSProvider  = (*AssetResolver)(nil)
)
