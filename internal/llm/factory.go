package llm

import (
	"fmt"

	"github.com/scrypster/frontdesk/internal/config"
)

// NewEmbeddingGenerator creates the embedding provider from configuration.
// The embedding provider is mandatory: the agent cannot serve queries
// without it, so an unsupported provider is an error, not a degradation.
func NewEmbeddingGenerator(cfg config.LLMConfig) (EmbeddingGenerator, error) {
	switch cfg.EmbeddingProvider {
	case "openai":
		return NewOpenAIEmbeddingClient(OpenAIEmbeddingConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIEmbeddingModel,
		}), nil
	case "ollama", "":
		return NewOllamaClient(OllamaConfig{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.OllamaEmbeddingModel,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %q", cfg.EmbeddingProvider)
	}
}

// NewFallbackGenerator creates the optional external LLM fallback from
// configuration. Returns (nil, nil) when no fallback is configured; the
// agent treats a nil generator as "capability absent".
func NewFallbackGenerator(cfg config.LLMConfig) (TextGenerator, error) {
	switch cfg.FallbackProvider {
	case "none", "":
		return nil, nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, nil
		}
		return NewOpenAIClient(OpenAIConfig{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			SystemPrompt: FallbackSystemPrompt,
			Temperature:  FallbackTemperature,
			MaxTokens:    FallbackMaxTokens,
		}), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		return NewAnthropicClient(AnthropicConfig{
			APIKey:       cfg.AnthropicAPIKey,
			Model:        cfg.AnthropicModel,
			SystemPrompt: FallbackSystemPrompt,
			Temperature:  FallbackTemperature,
			MaxTokens:    FallbackMaxTokens,
		}), nil
	case "ollama":
		return NewOllamaClient(OllamaConfig{
			BaseURL:      cfg.OllamaURL,
			Model:        cfg.OllamaModel,
			SystemPrompt: FallbackSystemPrompt,
			Temperature:  FallbackTemperature,
			MaxTokens:    FallbackMaxTokens,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported fallback provider: %q", cfg.FallbackProvider)
	}
}
