package style

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hyperjump/deckgen/internal/models"
)

// Style block tag pair the model is instructed to emit.
const (
	styleTagOpen  = "<STYLE_JSON>"
	styleTagClose = "</STYLE_JSON>"
)

var styleTagRe = regexp.MustCompile(`(?is)<STYLE_JSON>(.*?)</STYLE_JSON>`)

// ExtractOverrides scans model output for an embedded style object and decodes
// it. A tagged <STYLE_JSON> block is preferred; failing that, the text is
// scanned backward for the last balanced top-level {...} that decodes. Returns
// nil when no decodable block exists — callers must not conflate "no style
// found" with an all-default style.
func ExtractOverrides(text string) *models.StyleOverrides {
	if m := styleTagRe.FindStringSubmatch(text); m != nil {
		var o models.StyleOverrides
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &o); err == nil {
			return &o
		}
		// Malformed tagged block: fall through to the balanced-brace scan.
	}
	return extractLastBalancedObject(text)
}

// extractLastBalancedObject walks backward over the text looking for a '{'
// whose balanced closing brace yields a decodable JSON object. The first
// candidate (from the end) that decodes wins.
func extractLastBalancedObject(text string) *models.StyleOverrides {
	for start := len(text) - 1; start >= 0; start-- {
		if text[start] != '{' {
			continue
		}
		depth := 0
		for end := start; end < len(text); end++ {
			switch text[end] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				candidate := text[start : end+1]
				var o models.StyleOverrides
				if err := json.Unmarshal([]byte(candidate), &o); err == nil {
					return &o
				}
				break
			}
		}
	}
	return nil
}

// StripStyleBlock removes the tagged style block from model output so the
// slide parser never sees it.
func StripStyleBlock(text string) string {
	return styleTagRe.ReplaceAllString(text, "")
}
