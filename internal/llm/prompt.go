// Package llm calls the remote model service to turn document text into slide
// outlines and style declarations.
package llm

import (
	"fmt"
	"unicode/utf8"

	"github.com/hyperjump/deckgen/pkg/utils"
)

// systemPrompt is the fixed system message for every summarization call.
const systemPrompt = "You are a presentation designer."

// truncationMarker is appended to a document excerpt that was cut short.
const truncationMarker = "\n\n[TRUNCATED]"

const promptTemplate = `You are a helpful presentation designer. Summarize the supplied document into presentation slides and produce a JSON with style settings.

Requirements:
1) For each slide, produce a title and 4-5 concise bullet points (one per line).
2) Follow these design instructions: %s
3) After the slides, include a JSON block enclosed by <STYLE_JSON>...</STYLE_JSON> exactly (only the JSON inside).
   JSON keys should include (if possible): background_color (hex like #RRGGBB), font (string), font_size (number), font_color (hex), footer_text (string), emoji_in_bullets (boolean).
4) Keep the slides short and presentation-friendly.

Example output:
Slide Title: Example Slide
- Bullet one
- Bullet two

<STYLE_JSON>{"background_color":"#003366","font":"Calibri","font_size":18,"font_color":"#FFFFFF"}</STYLE_JSON>

Document:
%s`

// BuildPrompt assembles the user prompt: fixed instruction template, the
// design prompt, and a bounded document excerpt with a truncation marker when
// cut.
func BuildPrompt(text, designPrompt string, maxExcerptChars int) string {
	excerpt := text
	if maxExcerptChars > 0 && utf8.RuneCountInString(text) > maxExcerptChars {
		excerpt = utils.TruncateHard(text, maxExcerptChars) + truncationMarker
	}
	return fmt.Sprintf(promptTemplate, designPrompt, excerpt)
}
