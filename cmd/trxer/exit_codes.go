package main

import (
	"errors"
	"os"

	trxer "github.com/trxer/go-trxer"
	"github.com/trxer/go-trxer/internal/config"
)

// Exit codes for the trxer CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error, including malformed input
	ExitUsage    = 2 // Invalid flags or config
	ExitIO       = 3 // Input not found, permission denied, report not writable
	ExitEngine   = 4 // XSLT engine missing or stylesheet rejected
	ExitTemplate = 5 // Bundled or custom template assets unusable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template errors (exit 5)
	if errors.Is(err, trxer.ErrResourceNotFound) ||
		errors.Is(err, trxer.ErrStructure) {
		return ExitTemplate
	}

	// Engine errors (exit 4)
	if errors.Is(err, trxer.ErrEngine) ||
		errors.Is(err, trxer.ErrCompile) {
		return ExitEngine
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, trxer.ErrWriteOutput) ||
		errors.Is(err, ErrWriteStylesheet) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidEngine) ||
		errors.Is(err, trxer.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
