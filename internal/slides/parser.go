package slides

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/hyperjump/deckgen/internal/config"
	"github.com/hyperjump/deckgen/internal/models"
	"github.com/hyperjump/deckgen/pkg/utils"
)

// storedTitleLimit bounds any slide title before storage, regardless of source.
const storedTitleLimit = 250

var (
	// slideHeaderRe locates "Slide Title:" / "Title:" headers. Matches are
	// found left to right, so "Slide Title:" is consumed before its embedded
	// "Title:" can match.
	slideHeaderRe = regexp.MustCompile(`(?i)(?:slide title:|title:)[ \t]*`)

	// mdHeaderRe locates markdown "# Title" heading lines.
	mdHeaderRe = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*(.+)$`)

	// bulletLineRe qualifies a line as a bullet: dash, bullet glyph, asterisk,
	// or a numbered-list marker.
	bulletLineRe = regexp.MustCompile(`^(?:[-•*]|\d{1,2}[.)])[ \t]+`)

	// mdBulletRe qualifies a bullet under a markdown heading: dash lines only,
	// so asterisk emphasis and numbered prose stay out of the bullet list.
	mdBulletRe = regexp.MustCompile(`^-[ \t]+`)

	// bulletPrefixRe strips the marker prefix from a qualifying bullet line.
	bulletPrefixRe = regexp.MustCompile(`^[-•*\d).]+[ \t]*`)
)

// metaHeaders are decoration lines the model sometimes emits above bullet
// lists; they are never bullets themselves.
var metaHeaders = []string{"bullet points:", "bullet points", "bullets:", "key points:", "points:"}

// Parser converts raw model output into an ordered slide sequence using a
// cascade of strategies of decreasing structure-assumption.
type Parser struct {
	maxBullets       int
	summarySentences int
	chunkSize        int
	titleLimit       int
	clean            bool
}

// NewParser builds a parser from deck settings.
func NewParser(cfg config.DeckConfig) *Parser {
	return &Parser{
		maxBullets:       cfg.MaxBullets,
		summarySentences: cfg.SummarySentences,
		chunkSize:        cfg.ParserChunkSize,
		titleLimit:       cfg.TitleLimit,
		clean:            cfg.CleanBullets,
	}
}

// Parse extracts slide records from output. The strategies are tried in
// order and the first that finds structure wins: explicit slide headers,
// markdown headings, then fixed-size chunks of the collapsed text. Non-empty
// input never yields an empty sequence; empty input yields one placeholder
// slide signaling that nothing could be extracted.
func (p *Parser) Parse(output string) []models.Slide {
	if strings.TrimSpace(output) == "" {
		return []models.Slide{placeholderSlide()}
	}
	if s := p.parseHeaders(output); len(s) > 0 {
		return s
	}
	if s := p.parseMarkdown(output); len(s) > 0 {
		return s
	}
	return p.parseChunks(output)
}

// parseHeaders handles "Slide Title:" / "Title:" structured output. Everything
// between a header line and the next header is that slide's body.
func (p *Parser) parseHeaders(output string) []models.Slide {
	locs := slideHeaderRe.FindAllStringIndex(output, -1)
	if locs == nil {
		return nil
	}
	var out []models.Slide
	for i, loc := range locs {
		rest := output[loc[1]:]
		end := len(output)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		section := output[loc[1]:end]

		title := section
		body := ""
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 && loc[1]+nl < end {
			title = output[loc[1] : loc[1]+nl]
			body = output[loc[1]+nl+1 : end]
		}
		out = append(out, p.buildSlide(title, body, bulletLineRe))
	}
	return out
}

// parseMarkdown handles "# Title" style output; bullets are dash lines.
func (p *Parser) parseMarkdown(output string) []models.Slide {
	locs := mdHeaderRe.FindAllStringSubmatchIndex(output, -1)
	if locs == nil {
		return nil
	}
	var out []models.Slide
	for i, loc := range locs {
		title := output[loc[2]:loc[3]]
		bodyStart := loc[1]
		bodyEnd := len(output)
		if i+1 < len(locs) {
			bodyEnd = locs[i+1][0]
		}
		out = append(out, p.buildSlide(title, output[bodyStart:bodyEnd], mdBulletRe))
	}
	return out
}

// parseChunks is the lowest-confidence fallback: collapse whitespace, slice
// the text into fixed-size character chunks, one slide per chunk.
func (p *Parser) parseChunks(output string) []models.Slide {
	cleaned := utils.CollapseWhitespace(output)
	if cleaned == "" {
		return []models.Slide{placeholderSlide()}
	}
	var out []models.Slide
	for i := 0; i < len(cleaned); i += p.chunkSize {
		end := i + p.chunkSize
		if end > len(cleaned) {
			end = len(cleaned)
		}
		bullets := p.capBullets(SummaryBullets(cleaned[i:end], p.summarySentences))
		title := fmt.Sprintf("Part %d", len(out)+1)
		if len(bullets) > 0 {
			title = utils.TruncateHard(bullets[0], p.titleLimit)
		}
		out = append(out, models.Slide{Title: title, Bullets: ensureBullets(bullets)})
	}
	return out
}

// buildSlide assembles one slide from a raw title and body. Lines matching
// lineRe are extracted as bullets and cleaned; a body with no qualifying lines
// falls back to a naive sentence summary.
func (p *Parser) buildSlide(title, body string, lineRe *regexp.Regexp) models.Slide {
	var bullets []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isMetaHeader(line) {
			continue
		}
		if !lineRe.MatchString(line) {
			continue
		}
		b := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if p.clean {
			b = cleanDecoration(b)
		}
		if b != "" {
			bullets = append(bullets, b)
		}
	}
	if len(bullets) == 0 {
		bullets = SummaryBullets(body, p.summarySentences)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	return models.Slide{
		Title:   utils.TruncateHard(title, storedTitleLimit),
		Bullets: ensureBullets(p.capBullets(bullets)),
	}
}

func (p *Parser) capBullets(bullets []string) []string {
	if p.maxBullets > 0 && len(bullets) > p.maxBullets {
		return bullets[:p.maxBullets]
	}
	return bullets
}

// ensureBullets substitutes a single placeholder when nothing could be derived.
func ensureBullets(bullets []string) []string {
	if len(bullets) == 0 {
		return []string{"(no content)"}
	}
	return bullets
}

func placeholderSlide() models.Slide {
	return models.Slide{Title: "No Content", Bullets: []string{"No extractable text was found."}}
}

func isMetaHeader(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	for _, h := range metaHeaders {
		if l == h {
			return true
		}
	}
	return false
}

// cleanDecoration strips emoji and symbol runes and trims non-alphanumeric
// decoration from the edges of a bullet.
func cleanDecoration(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSymbol(r) || r >= 0x1F000 {
			return -1
		}
		return r
	}, s)
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(s)
}
