// Package extract provides text extraction from various document formats.
package extract

import (
	"fmt"
	"os"

	"github.com/hyperjump/deckgen/internal/models"
)

// Extractor extracts plain text from uploaded documents.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the normalized text content of doc: paragraphs joined by
// blank lines, leading/trailing whitespace trimmed. An empty result with a nil
// error means the document held no extractable text.
func (e *Extractor) Extract(doc models.Document) (string, error) {
	switch doc.Kind {
	case models.KindPDF:
		return extractPDF(doc.Data)
	case models.KindDOCX:
		return extractDOCX(doc.Data)
	case models.KindXLSX:
		return extractExcel(doc.Data)
	case models.KindPPTX:
		return extractPPTX(doc.Data)
	default:
		return extractPlain(doc.Data)
	}
}

// ExtractFile reads the file at path and extracts its text, inferring the
// format from the filename extension.
func (e *Extractor) ExtractFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return e.Extract(models.NewDocument(path, content))
}
