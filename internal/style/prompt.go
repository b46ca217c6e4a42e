// Package style resolves deck styling from user design prompts and from style
// blocks embedded in model output.
package style

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperjump/deckgen/internal/models"
)

// colorWord maps a color name in a design prompt to its hex value. The list is
// ordered; the first name found in the prompt wins (longer names come before
// their prefixes so "dark blue" is not shadowed by "blue").
type colorWord struct {
	Name string
	Hex  string
}

var colorWords = []colorWord{
	{"dark blue", "#003366"},
	{"blue", "#003366"},
	{"black", "#000000"},
	{"white", "#FFFFFF"},
	{"green", "#008000"},
	{"red", "#FF0000"},
	{"yellow", "#FFCC00"},
	{"gray", "#808080"},
	{"dark", "#333333"},
	{"light", "#F8F8F8"},
	{"orange", "#FF8C00"},
	{"purple", "#800080"},
}

// darkColorNames are backgrounds that need a white font color to stay readable.
var darkColorNames = map[string]bool{
	"blue":      true,
	"dark blue": true,
	"black":     true,
	"dark":      true,
	"purple":    true,
}

// fontOptions is the fixed set of recognized font names. First substring match wins.
var fontOptions = []string{"Arial", "Calibri", "Times New Roman", "Helvetica", "Comic Sans MS", "Verdana"}

const (
	largeFontSize = 20
	smallFontSize = 12
)

var (
	hexTokenRe = regexp.MustCompile(`#([0-9a-fA-F]{6})`)
	fontSizeRe = regexp.MustCompile(`font ?size ?[:= ]?(\d{2})`)
	footerRe   = regexp.MustCompile(`(?i)footer:\s*([^\n]+)`)
)

// ColorHex resolves a color name from the fixed vocabulary to its hex value.
// Returns empty string when the name is unknown.
func ColorHex(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cw := range colorWords {
		if cw.Name == name {
			return cw.Hex
		}
	}
	return ""
}

// ParsePrompt converts a free-form design instruction into a fully populated
// style. Every field that nothing in the prompt matched keeps its default; the
// function never fails.
func ParsePrompt(prompt string) models.Style {
	s := models.DefaultStyle()
	lower := strings.ToLower(prompt)

	// A literal #RRGGBB token wins for the background.
	if m := hexTokenRe.FindStringSubmatch(prompt); m != nil {
		s.BackgroundColor = "#" + m[1]
	} else {
		for _, cw := range colorWords {
			if strings.Contains(lower, cw.Name) {
				s.BackgroundColor = cw.Hex
				if darkColorNames[cw.Name] {
					s.FontColor = "#FFFFFF"
				} else {
					s.FontColor = "#000000"
				}
				break
			}
		}
	}

	for _, f := range fontOptions {
		if strings.Contains(lower, strings.ToLower(f)) {
			s.Font = f
			break
		}
	}

	if strings.Contains(lower, "large") || strings.Contains(lower, "big") {
		s.FontSize = largeFontSize
	}
	if strings.Contains(lower, "small") || strings.Contains(lower, "compact") {
		s.FontSize = smallFontSize
	}
	// An explicit numeric size is authoritative over keyword-derived sizes.
	if m := fontSizeRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			s.FontSize = n
		}
	}

	if m := footerRe.FindStringSubmatch(prompt); m != nil {
		s.FooterText = strings.TrimSpace(m[1])
	}

	if strings.Contains(lower, "emoji") || strings.Contains(lower, "smiley") {
		s.EmojiInBullets = true
	}

	return s
}
