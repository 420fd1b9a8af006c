package pipeline

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Sentinel errors for stylesheet handling.
var (
	// ErrStructure indicates the template lacks an element or attribute the
	// merger relies on. The template is corrupted or incompatible.
	ErrStructure = errors.New("unexpected stylesheet structure")

	// ErrTemplateParse indicates the template is not well-formed XML.
	ErrTemplateParse = errors.New("failed to parse stylesheet template")
)

// ParseStylesheet parses XSLT template bytes into a mutable document.
func ParseStylesheet(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrTemplateParse)
	}
	return doc, nil
}

// Serialize writes the document back to bytes. Output is stable for a given
// document, so merging the same inputs twice yields identical bytes.
func Serialize(doc *etree.Document) ([]byte, error) {
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing stylesheet: %w", err)
	}
	return data, nil
}
