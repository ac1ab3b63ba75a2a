package providers

import (
	"github.com/AzielCF/az-medical-mcp/core/config"
	"github.com/AzielCF/az-medical-mcp/domains/analysis"
)

const (
	NameAnthropic = "anthropic"
	NameOpenAI    = "openai"
	NameGemini    = "gemini"
)

// Config is the per-provider connection setting. BaseURL is empty in production.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewChain builds the inference chain in priority order anthropic, openai,
// gemini. A slot without an API key stays empty.
func NewChain(cfg *config.Config) analysis.ProviderChain {
	slots := []analysis.ProviderSlot{{Name: NameAnthropic}, {Name: NameOpenAI}, {Name: NameGemini}}

	if key := cfg.APIKeys.Anthropic; key != "" {
		slots[0].Provider = NewAnthropicProvider(Config{APIKey: key, Model: cfg.AI.AnthropicModel})
	}
	if key := cfg.APIKeys.OpenAI; key != "" {
		slots[1].Provider = NewOpenAIProvider(Config{APIKey: key, Model: cfg.AI.OpenAIModel})
	}
	if key := cfg.APIKeys.Gemini; key != "" {
		slots[2].Provider = NewGeminiProvider(Config{APIKey: key, Model: cfg.AI.GeminiModel})
	}

	return analysis.NewProviderChain(slots...)
}
