// Package schema validates TRX input against an XML Schema before it is
// transformed.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"

	"github.com/trxer/go-trxer/internal/assets"
)

// Sentinel errors for schema operations.
var (
	// ErrSchemaLoad indicates the schema itself could not be loaded or compiled.
	ErrSchemaLoad = errors.New("failed to load schema")

	// ErrInvalidInput indicates the document does not conform to the schema.
	ErrInvalidInput = errors.New("input does not match schema")
)

// maxReported caps how many violations are listed in an error message.
const maxReported = 3

// Violation is one schema violation found in a document.
type Violation struct {
	Code    string
	Message string
	Path    string
	Line    int
	Column  int
}

// String formats the violation with its location when known.
func (v Violation) String() string {
	var b strings.Builder
	if v.Line > 0 {
		fmt.Fprintf(&b, "line %d", v.Line)
		if v.Column > 0 {
			fmt.Fprintf(&b, ":%d", v.Column)
		}
		b.WriteString(": ")
	}
	b.WriteString(v.Message)
	if v.Path != "" {
		fmt.Fprintf(&b, " at %s", v.Path)
	}
	return b.String()
}

// ValidationError carries every violation found in a document.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidInput.Error()
	}

	shown := e.Violations
	if len(shown) > maxReported {
		shown = shown[:maxReported]
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = v.String()
	}

	msg := fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
	if extra := len(e.Violations) - len(shown); extra > 0 {
		msg += fmt.Sprintf(" (and %d more)", extra)
	}
	return msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validator checks documents against a compiled schema.
// Safe for concurrent use.
type Validator struct {
	schema *xsd.Schema
}

// NewValidator compiles the schema at location inside fsys.
func NewValidator(fsys fs.FS, location string) (*Validator, error) {
	schema, err := xsd.Load(fsys, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaLoad, err)
	}
	return &Validator{schema: schema}, nil
}

// NewBundledValidator compiles the TRX schema from provider, usually the
// asset resolver so a custom asset directory may replace it.
func NewBundledValidator(provider assets.FSProvider) (*Validator, error) {
	fsys, err := provider.FS()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaLoad, err)
	}
	return NewValidator(fsys, assets.SchemaName)
}

// Check validates input. Returns a *ValidationError (matching
// ErrInvalidInput) listing the violations.
func (v *Validator) Check(input []byte) error {
	err := v.schema.Validate(bytes.NewReader(input))
	if err == nil {
		return nil
	}

	list, ok := xsderrors.AsValidations(err)
	if !ok {
		return &ValidationError{Violations: []Violation{{Message: err.Error()}}}
	}

	violations := make([]Violation, len(list))
	for i, item := range list {
		violations[i] = Violation{
			Code:    item.Code,
			Message: item.Message,
			Path:    item.Path,
			Line:    item.Line,
			Column:  item.Column,
		}
	}
	return &ValidationError{Violations: violations}
}
