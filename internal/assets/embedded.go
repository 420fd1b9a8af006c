package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed files/*
var files embed.FS

// embeddedRoot is the directory inside the embedded filesystem holding assets.
const embeddedRoot = "files"

// FSLoader loads assets from an fs.FS rooted at a directory.
// Implements AssetLoader interface.
type FSLoader struct {
	fsys fs.FS
	root string
}

// NewFSLoader creates an FSLoader reading names relative to root inside fsys.
// An empty root reads from the top of fsys.
func NewFSLoader(fsys fs.FS, root string) *FSLoader {
	return &FSLoader{fsys: fsys, root: root}
}

// NewEmbeddedLoader creates an FSLoader over the assets compiled into the binary.
func NewEmbeddedLoader() *FSLoader {
	return NewFSLoader(files, embeddedRoot)
}

// Load reads the named asset.
func (l *FSLoader) Load(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(l.fsys, l.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return content, nil
}

// LoadText reads the named asset as text.
func (l *FSLoader) LoadText(name string) (string, error) {
	content, err := l.Load(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// FS returns the assets as a filesystem whose top level holds the asset names.
func (l *FSLoader) FS() (fs.FS, error) {
	if l.root == "" {
		return l.fsys, nil
	}
	sub, err := fs.Sub(l.fsys, l.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return sub, nil
}

func (l *FSLoader) path(name string) string {
	if l.root == "" {
		return name
	}
	return path.Join(l.root, name)
}

