package models

// Style defaults. Any field that fails to parse or validate reverts to these
// rather than propagating an error.
const (
	DefaultBackgroundColor = "#FFFFFF"
	DefaultFont            = "Arial"
	DefaultFontSize        = 14
	DefaultFontColor       = "#000000"
)

// Style is the resolved set of visual parameters applied uniformly across a
// generated deck. JSON tags match the model's style block wire format.
type Style struct {
	BackgroundColor string `json:"background_color"`
	Font            string `json:"font"`
	FontSize        int    `json:"font_size"`
	FontColor       string `json:"font_color"`
	EmojiInBullets  bool   `json:"emoji_in_bullets"`
	FooterText      string `json:"footer_text,omitempty"`
}

// DefaultStyle returns a Style with every field at its default.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: DefaultBackgroundColor,
		Font:            DefaultFont,
		FontSize:        DefaultFontSize,
		FontColor:       DefaultFontColor,
	}
}

// StyleOverrides is a partially populated style decoded from model output.
// Pointer fields distinguish "absent" from zero values, so a block that only
// declares font_size overrides only font_size.
type StyleOverrides struct {
	BackgroundColor *string `json:"background_color"`
	Font            *string `json:"font"`
	FontSize        *int    `json:"font_size"`
	FontColor       *string `json:"font_color"`
	EmojiInBullets  *bool   `json:"emoji_in_bullets"`
	FooterText      *string `json:"footer_text"`
}

// Apply merges the overrides into s. Model-declared values win over values
// guessed from the user's free-text prompt.
func (o *StyleOverrides) Apply(s *Style) {
	if o == nil {
		return
	}
	if o.BackgroundColor != nil {
		s.BackgroundColor = *o.BackgroundColor
	}
	if o.Font != nil {
		s.Font = *o.Font
	}
	if o.FontSize != nil && *o.FontSize > 0 {
		s.FontSize = *o.FontSize
	}
	if o.FontColor != nil {
		s.FontColor = *o.FontColor
	}
	if o.EmojiInBullets != nil {
		s.EmojiInBullets = *o.EmojiInBullets
	}
	if o.FooterText != nil {
		s.FooterText = *o.FooterText
	}
}
