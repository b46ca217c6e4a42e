package models

// Slide is the structured (title, bullets) unit consumed by the deck assembler.
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Warning records a per-file problem that did not abort the batch.
type Warning struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// GenerateResult is the outcome of one generate request: the ordered slide
// sequence, the resolved style, and any per-file warnings. FallbackUsed is
// true when at least one document was summarized locally instead of by the
// model. SourceNames/SourceTexts carry the extracted text of each document in
// batch order, for the plain-text PDF rendering.
type GenerateResult struct {
	Slides       []Slide   `json:"slides"`
	Style        Style     `json:"style"`
	Warnings     []Warning `json:"warnings,omitempty"`
	ModelUsed    string    `json:"model_used"`
	FallbackUsed bool      `json:"fallback_used"`

	SourceNames []string          `json:"-"`
	SourceTexts map[string]string `json:"-"`
}
