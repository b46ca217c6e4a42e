// Package deck assembles the final presentation artifacts: a .pptx deck built
// from OOXML parts, and an optional paginated text-dump PDF.
package deck

import (
	"strconv"
	"strings"

	"github.com/hyperjump/deckgen/internal/style"
)

// normalizeHex resolves a color string to a bare RRGGBB value for OOXML.
// Accepts "#RRGGBB", "RRGGBB", or a color name from the fixed vocabulary.
// Anything that fails to parse degrades to fallback (itself "RRGGBB") so a bad
// color never aborts rendering.
func normalizeHex(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if !strings.HasPrefix(s, "#") {
		if named := style.ColorHex(s); named != "" {
			s = named
		}
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return fallback
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return fallback
	}
	return strings.ToUpper(h)
}
