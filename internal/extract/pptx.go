package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// pptxSlidePathPrefix is the path prefix for slide XML files inside a .pptx zip.
const pptxSlidePathPrefix = "ppt/slides/slide"

// atTag matches <a:t>text</a:t> with any attributes.
var atTag = regexp.MustCompile(`<a:t[^>]*>([^<]*)</a:t>`)

// extractPPTX extracts text from .pptx bytes: the <a:t> text nodes of each
// slide joined with spaces, slides joined with blank lines.
func extractPPTX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract PPTX: not a zip: %w", err)
	}
	var sections []string
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, pptxSlidePathPrefix) || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("extract PPTX: open %s: %w", f.Name, err)
		}
		var slideBuf bytes.Buffer
		if _, err := slideBuf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return "", fmt.Errorf("extract PPTX: read %s: %w", f.Name, err)
		}
		_ = rc.Close()
		var texts []string
		for _, p := range atTag.FindAllStringSubmatch(slideBuf.String(), -1) {
			if t := strings.TrimSpace(p[1]); t != "" {
				texts = append(texts, t)
			}
		}
		if len(texts) > 0 {
			sections = append(sections, strings.Join(texts, " "))
		}
	}
	return strings.Join(sections, "\n\n"), nil
}
