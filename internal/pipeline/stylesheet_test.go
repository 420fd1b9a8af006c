package pipeline

import (
	"errors"
	"testing"
)

func TestParseStylesheet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"well-formed", `<xsl:stylesheet xmlns:xsl="http://www.w3.org/1999/XSL/Transform" version="1.0"/>`, nil},
		{"empty input", "", ErrTemplateParse},
		{"text only", "not xml", ErrTemplateParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseStylesheet([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseStylesheet() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStylesheet() unexpected error: %v", err)
			}
			if doc.Root() == nil {
				t.Error("ParseStylesheet() returned document without root")
			}
		})
	}
}
