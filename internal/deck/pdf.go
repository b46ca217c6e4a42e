package deck

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// BuildTextPDF renders a simple paginated dump of the concatenated extracted
// document text, independent of slide styling. Documents are separated by a
// heading line with the source filename.
func BuildTextPDF(sections map[string]string, order []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for i, name := range order {
		text := strings.TrimSpace(sections[name])
		if text == "" {
			continue
		}
		if i > 0 {
			pdf.Ln(8)
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 6, tr(name), "", "L", false)
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, tr(text), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
