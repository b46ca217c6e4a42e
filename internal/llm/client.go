package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"

	"github.com/hyperjump/deckgen/internal/config"
)

// Summarizer produces the raw model output for one document. Implementations
// must be safe for sequential reuse across documents in a batch.
type Summarizer interface {
	Summarize(ctx context.Context, text, designPrompt, model string) (string, error)
}

// Client talks to an OpenAI-compatible chat completion endpoint (Groq by
// default). It is explicitly constructed and passed in; there is no package
// level client state.
type Client struct {
	llm    *openai.LLM
	cfg    config.LLMConfig
	logger *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a client from config. The credential is read from the
// environment variable named by cfg.APIKeyEnv; a missing credential is an
// error here rather than at first call time.
func NewClient(cfg config.LLMConfig, opts ...ClientOption) (*Client, error) {
	token := os.Getenv(cfg.APIKeyEnv)
	if token == "" {
		return nil, fmt.Errorf("missing credential: environment variable %s is not set", cfg.APIKeyEnv)
	}
	llmClient, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}
	c := &Client{llm: llmClient, cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Summarize sends one document excerpt plus the design prompt to the model and
// returns the raw completion text. model must be from the bounded allowed
// list; empty means the configured default.
func (c *Client) Summarize(ctx context.Context, text, designPrompt, model string) (string, error) {
	if model == "" {
		model = c.cfg.Model
	}
	if !c.cfg.ModelAllowed(model) {
		return "", fmt.Errorf("model %q is not in the allowed list", model)
	}

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, BuildPrompt(text, designPrompt, c.cfg.MaxExcerptChars)),
	}
	resp, err := c.llm.GenerateContent(ctx, content,
		llms.WithModel(model),
		llms.WithTemperature(c.cfg.Temperature),
		llms.WithMaxTokens(c.cfg.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model call: empty response")
	}
	if c.logger != nil {
		c.logger.Debug("model response received",
			zap.String("model", model),
			zap.Int("chars", len(resp.Choices[0].Content)))
	}
	return resp.Choices[0].Content, nil
}
