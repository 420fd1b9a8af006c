package trxer

import (
	"errors"

	"github.com/trxer/go-trxer/internal/assets"
	"github.com/trxer/go-trxer/internal/pipeline"
	"github.com/trxer/go-trxer/internal/schema"
	"github.com/trxer/go-trxer/internal/transform"
)

// Sentinel errors for library operations.
var (
	// ErrResourceNotFound indicates a bundled asset (template, stylesheet,
	// script or schema) is missing. This is a packaging defect.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidAssetPath indicates an unusable asset directory or asset name.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrStructure indicates the template lacks the elements the merge needs
	// or cannot be parsed.
	ErrStructure = errors.New("template structure error")

	// ErrCompile indicates the merged stylesheet was rejected by the engine.
	ErrCompile = errors.New("stylesheet compile error")

	// ErrTransform indicates the input could not be transformed: missing,
	// unreadable, not well-formed or failing validation.
	ErrTransform = errors.New("transform error")

	// ErrEngine indicates the XSLT engine is unknown or cannot run.
	ErrEngine = errors.New("xslt engine error")

	// ErrWriteOutput indicates the report could not be written.
	ErrWriteOutput = errors.New("failed to write report")
)

// errorMappings pairs internal sentinels with public ones, checked in order.
var errorMappings = []struct {
	internal error
	public   error
}{
	{assets.ErrAssetNotFound, ErrResourceNotFound},
	{assets.ErrInvalidBasePath, ErrInvalidAssetPath},
	{assets.ErrPathTraversal, ErrInvalidAssetPath},
	{assets.ErrInvalidAssetName, ErrInvalidAssetPath},
	{assets.ErrAssetRead, ErrResourceNotFound},
	{schema.ErrSchemaLoad, ErrResourceNotFound},
	{pipeline.ErrStructure, ErrStructure},
	{pipeline.ErrTemplateParse, ErrStructure},
	{transform.ErrEngineUnavailable, ErrEngine},
	{transform.ErrUnknownEngine, ErrEngine},
	{transform.ErrCompile, ErrCompile},
	{transform.ErrWriteOutput, ErrWriteOutput},
	{transform.ErrTransform, ErrTransform},
	{schema.ErrInvalidInput, ErrTransform},
}

// convertError maps internal errors to public errors.
// Errors without a mapping (e.g. context cancellation) are returned as is.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.internal) {
			return wrapError(m.public, err)
		}
	}
	return err
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel and the original error, so callers can
// also match standard errors such as fs.ErrNotExist.
func (e *wrappedError) Unwrap() []error {
	return []error{e.sentinel, e.original}
}
