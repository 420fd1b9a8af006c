package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is a single flat filename.
// Returns ErrInvalidAssetName if the name is empty, contains path separators
// or a NUL byte, or is a traversal element.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
