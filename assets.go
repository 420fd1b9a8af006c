package trxer

import (
	"fmt"

	"github.com/trxer/go-trxer/internal/assets"
)

// Names of the bundled assets.
const (
	TemplateName = assets.TemplateName
	SchemaName   = assets.SchemaName
)

// AssetLoader supplies the report template and the files it references
// (stylesheets and scripts), by file name.
//
// Implementations should return an error matching ErrResourceNotFound
// for unknown names.
type AssetLoader interface {
	Load(name string) ([]byte, error)
}

// NewAssetLoader creates an AssetLoader that reads from basePath and falls
// back to the bundled assets for files basePath does not contain.
// An empty basePath returns the bundled assets only.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	if basePath == "" {
		return &assetLoaderAdapter{loader: assets.NewEmbeddedLoader()}, nil
	}
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertError(err)
	}
	return &assetLoaderAdapter{loader: resolver}, nil
}

// assetLoaderAdapter exposes an internal loader with public errors.
type assetLoaderAdapter struct {
	loader assets.AssetLoader
}

func (a *assetLoaderAdapter) Load(name string) ([]byte, error) {
	content, err := a.loader.Load(name)
	if err != nil {
		return nil, convertError(err)
	}
	return content, nil
}

// publicToInternalAdapter wraps a public AssetLoader to the internal
// assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) Load(name string) ([]byte, error) {
	content, err := a.pub.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return content, nil
}

func (a *publicToInternalAdapter) LoadText(name string) (string, error) {
	content, err := a.Load(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
