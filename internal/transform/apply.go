package transform

import (
	"context"
	"fmt"
	"os"

	"github.com/trxer/go-trxer/internal/fileutil"
)

// OutputExtension is appended to the input path to name the report.
const OutputExtension = ".html"

// InputCheck inspects raw input before it is transformed. A non-nil error
// aborts the transform.
type InputCheck func(input []byte) error

// OutputPath returns the report path for inputPath: the input path with
// OutputExtension appended.
func OutputPath(inputPath string) string {
	return inputPath + OutputExtension
}

// ApplyFile applies sheet to the XML file at inputPath and writes the result
// to OutputPath(inputPath), replacing any existing file. check may be nil.
//
// Nothing is written unless the transform succeeds, so a missing or invalid
// input never leaves a report behind.
func ApplyFile(ctx context.Context, sheet Stylesheet, inputPath string, check InputCheck) (string, error) {
	input, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrTransform, inputPath, err)
	}
	if len(input) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrTransform, inputPath)
	}

	if check != nil {
		if err := check(input); err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrTransform, inputPath, err)
		}
	}

	out, err := sheet.Transform(ctx, input)
	if err != nil {
		return "", fmt.Errorf("transforming %s: %w", inputPath, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%w: %s produced an empty document", ErrTransform, inputPath)
	}

	outputPath := OutputPath(inputPath)
	if err := fileutil.WriteFileAtomic(outputPath, out, fileutil.FilePermissions); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return outputPath, nil
}
