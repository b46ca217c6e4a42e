package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = "GROQ_API_KEY"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "llama3-8b-8192"
	}
	if cfg.LLM.AllowedModels == nil {
		cfg.LLM.AllowedModels = []string{"llama3-8b-8192", "gemma2-9b-it", "mixtral-8x7b"}
	}
	if cfg.LLM.MaxExcerptChars == 0 {
		cfg.LLM.MaxExcerptChars = 3000
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 800
	}
	if cfg.LLM.MaxRetries == 0 {
		cfg.LLM.MaxRetries = 1
	}
	if cfg.Deck.MaxBullets == 0 {
		cfg.Deck.MaxBullets = 6
	}
	if cfg.Deck.SummarySentences == 0 {
		cfg.Deck.SummarySentences = 4
	}
	if cfg.Deck.ParserChunkSize == 0 {
		cfg.Deck.ParserChunkSize = 1200
	}
	if cfg.Deck.FallbackChunkSize == 0 {
		cfg.Deck.FallbackChunkSize = 1800
	}
	if cfg.Deck.TitleLimit == 0 {
		cfg.Deck.TitleLimit = 60
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".txt", ".md", ".pdf", ".docx", ".xlsx", ".pptx"}
	}
	if cfg.Watch.OutputDir == "" {
		cfg.Watch.OutputDir = "./decks"
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
