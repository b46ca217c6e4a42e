// Package pipeline orchestrates deck generation: extract text from each
// document, obtain a slide outline from the model (or a local fallback),
// parse it into slide records, and resolve the deck style.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/textsplitter"
	"go.uber.org/zap"

	"github.com/hyperjump/deckgen/internal/config"
	"github.com/hyperjump/deckgen/internal/extract"
	"github.com/hyperjump/deckgen/internal/llm"
	"github.com/hyperjump/deckgen/internal/models"
	"github.com/hyperjump/deckgen/internal/slides"
	"github.com/hyperjump/deckgen/internal/style"
	"github.com/hyperjump/deckgen/pkg/utils"
)

// fallbackTitleLimit bounds titles derived from raw text chunks when the model
// is unavailable.
const fallbackTitleLimit = 60

// ErrNoSlides is returned when no document in the batch yielded any slide.
var ErrNoSlides = errors.New("no slides could be generated from the supplied documents")

// Generator runs the document-to-slides pipeline. Construct with NewGenerator;
// the zero value is not usable.
type Generator struct {
	extractor  *extract.Extractor
	summarizer llm.Summarizer
	parser     *slides.Parser
	llmCfg     config.LLMConfig
	deckCfg    config.DeckConfig
	logger     *zap.Logger
}

// NewGenerator wires a generator from its collaborators. logger must not be nil.
func NewGenerator(summarizer llm.Summarizer, cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		extractor:  extract.NewExtractor(),
		summarizer: summarizer,
		parser:     slides.NewParser(cfg.Deck),
		llmCfg:     cfg.LLM,
		deckCfg:    cfg.Deck,
		logger:     logger,
	}
}

// Generate processes the batch of documents into one flat slide sequence plus
// a resolved style. Documents that fail to extract are skipped with a warning;
// a failed model call degrades to local chunk summarization, never to a batch
// error. The only hard failure is a batch that yields zero slides.
func (g *Generator) Generate(ctx context.Context, docs []models.Document, designPrompt, model string) (*models.GenerateResult, error) {
	if model == "" {
		model = g.llmCfg.Model
	}

	result := &models.GenerateResult{
		Style:       style.ParsePrompt(designPrompt),
		ModelUsed:   model,
		SourceTexts: make(map[string]string),
	}

	for _, doc := range docs {
		text, err := g.extractor.Extract(doc)
		if err != nil {
			g.logger.Warn("extraction failed, skipping document",
				zap.String("file", doc.Name), zap.Error(err))
			result.Warnings = append(result.Warnings, models.Warning{
				File:    doc.Name,
				Message: fmt.Sprintf("could not extract text: %v", err),
			})
			continue
		}
		if text == "" {
			result.Warnings = append(result.Warnings, models.Warning{
				File:    doc.Name,
				Message: "document contains no extractable text",
			})
			continue
		}

		result.SourceNames = append(result.SourceNames, doc.Name)
		result.SourceTexts[doc.Name] = text

		raw, outcome := g.summarize(ctx, text, designPrompt, model)
		if outcome.UsedModel {
			if o := style.ExtractOverrides(raw); o != nil {
				o.Apply(&result.Style)
			}
			result.Slides = append(result.Slides, g.parser.Parse(style.StripStyleBlock(raw))...)
			continue
		}

		// Model unavailable: summarize locally so the document still yields slides.
		result.FallbackUsed = true
		result.Warnings = append(result.Warnings, models.Warning{
			File:    doc.Name,
			Message: fmt.Sprintf("model summarization failed after %d attempt(s), used local summary: %v", outcome.Attempts, outcome.Err),
		})
		fallbackSlides, err := g.fallbackSlides(text)
		if err != nil {
			result.Warnings = append(result.Warnings, models.Warning{
				File:    doc.Name,
				Message: fmt.Sprintf("local summarization failed: %v", err),
			})
			continue
		}
		result.Slides = append(result.Slides, fallbackSlides...)
	}

	if len(result.Slides) == 0 {
		return nil, ErrNoSlides
	}
	return result, nil
}

// summarize calls the model with bounded retries and reports how it concluded.
func (g *Generator) summarize(ctx context.Context, text, designPrompt, model string) (string, llm.Outcome) {
	attempts := g.llmCfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		raw, err := g.summarizer.Summarize(ctx, text, designPrompt, model)
		if err == nil {
			return raw, llm.ModelOutcome(i)
		}
		lastErr = err
		g.logger.Warn("model call failed",
			zap.Int("attempt", i), zap.Int("max_attempts", attempts), zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", llm.FallbackOutcome(attempts, lastErr)
}

// fallbackSlides builds slides without the model: the text is split into
// chunks, each becoming one slide with a naive sentence summary as bullets.
func (g *Generator) fallbackSlides(text string) ([]models.Slide, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(g.deckCfg.FallbackChunkSize),
		textsplitter.WithChunkOverlap(0),
	)
	chunks, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split text: %w", err)
	}

	var out []models.Slide
	for _, chunk := range chunks {
		cleaned := utils.CollapseWhitespace(chunk)
		if cleaned == "" {
			continue
		}
		bullets := slides.SummaryBullets(cleaned, g.deckCfg.SummarySentences)
		if g.deckCfg.MaxBullets > 0 && len(bullets) > g.deckCfg.MaxBullets {
			bullets = bullets[:g.deckCfg.MaxBullets]
		}
		if len(bullets) == 0 {
			continue
		}
		out = append(out, models.Slide{
			Title:   utils.TruncateHard(cleaned, fallbackTitleLimit),
			Bullets: bullets,
		})
	}
	if len(out) == 0 {
		out = append(out, models.Slide{
			Title:   "Summary",
			Bullets: []string{utils.Truncate(utils.CollapseWhitespace(text), 200)},
		})
	}
	return out, nil
}
