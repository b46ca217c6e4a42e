// Package slides recovers structured slide records from free-form model output.
package slides

import (
	"strings"

	"github.com/hyperjump/deckgen/pkg/utils"
)

// summaryCharLimit bounds the prefix returned when text has no sentences.
const summaryCharLimit = 200

// SplitSentences splits text into sentences at '.', '!' or '?' followed by
// whitespace. Terminators stay attached to their sentence.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !isSpace(runes[i+1]) {
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			out = append(out, sentence)
		}
		start = i + 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		out = append(out, rest)
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Summarize produces a naive local summary: whitespace collapsed, first
// maxSentences sentences joined. When no sentences can be split off, a bounded
// character prefix is returned instead. This is the graceful degradation used
// when the remote model is unavailable.
func Summarize(text string, maxSentences int) string {
	t := utils.CollapseWhitespace(text)
	if t == "" {
		return ""
	}
	sentences := SplitSentences(t)
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	if joined := strings.Join(sentences, " "); joined != "" {
		return joined
	}
	return utils.Truncate(t, summaryCharLimit)
}

// SummaryBullets returns the sentences of a local summary, one bullet each.
func SummaryBullets(text string, maxSentences int) []string {
	return SplitSentences(Summarize(text, maxSentences))
}
