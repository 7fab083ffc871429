// Package config provides configuration management for Frontdesk.
// It loads settings from environment variables with the FRONTDESK_ prefix
// and provides sensible defaults for all configuration options.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration settings for the Frontdesk application.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Agent    AgentConfig
	LLM      LLMConfig
	Cache    CacheConfig
	Security SecurityConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int    // Server port (default: 6380)
	Host string // Server host (default: 127.0.0.1)
}

// CatalogConfig controls how the knowledge base catalog is loaded.
type CatalogConfig struct {
	// Path is an optional YAML catalog file. When empty, the compiled-in
	// default catalog is used.
	Path string
}

// AgentConfig contains matching policy settings.
type AgentConfig struct {
	// SimilarityThreshold is the minimum cosine similarity for an
	// embedding match to be considered confident (default: 0.55).
	SimilarityThreshold float64
}

// LLMConfig contains embedding and fallback LLM provider configuration.
type LLMConfig struct {
	EmbeddingProvider    string // Embedding provider: ollama, openai (default: ollama)
	FallbackProvider     string // Fallback LLM provider: ollama, openai, anthropic, none (default: none)
	OllamaURL            string // Ollama API URL (default: http://localhost:11434)
	OllamaModel          string // Ollama model name for fallback generation (default: qwen2.5:7b)
	OllamaEmbeddingModel string // Ollama model name for embeddings (default: nomic-embed-text)
	OpenAIAPIKey         string // OpenAI API key
	OpenAIModel          string // OpenAI model name (default: gpt-4o-mini)
	OpenAIEmbeddingModel string // OpenAI embedding model name (default: text-embedding-3-small)
	AnthropicAPIKey      string // Anthropic API key
	AnthropicModel       string // Anthropic model name (default: claude-haiku-4-5-20251001)
}

// CacheConfig contains embedding cache configuration.
type CacheConfig struct {
	Engine      string // Cache engine: sqlite, postgres, none (default: sqlite)
	DataPath    string // Path to data directory for the SQLite cache (default: ./data)
	PostgresDSN string // DSN for the Postgres cache (used when Engine is postgres)
}

// SecurityConfig contains security and authentication settings.
type SecurityConfig struct {
	SecurityMode string // Security mode: development, production (default: development)
	APIToken     string // API authentication token
}

// LoadConfig loads configuration from environment variables with sensible defaults.
// All environment variables use the FRONTDESK_ prefix.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("FRONTDESK_PORT", 6380),
			Host: getEnv("FRONTDESK_HOST", "127.0.0.1"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("FRONTDESK_CATALOG_PATH", ""),
		},
		Agent: AgentConfig{
			SimilarityThreshold: getEnvFloat("FRONTDESK_SIMILARITY_THRESHOLD", 0.55),
		},
		LLM: LLMConfig{
			EmbeddingProvider:    getEnv("FRONTDESK_EMBEDDING_PROVIDER", "ollama"),
			FallbackProvider:     getEnv("FRONTDESK_FALLBACK_PROVIDER", "none"),
			OllamaURL:            getEnv("FRONTDESK_OLLAMA_URL", "http://localhost:11434"),
			OllamaModel:          getEnv("FRONTDESK_OLLAMA_MODEL", "qwen2.5:7b"),
			OllamaEmbeddingModel: getEnv("FRONTDESK_EMBEDDING_MODEL", "nomic-embed-text"),
			OpenAIAPIKey:         getEnv("FRONTDESK_OPENAI_API_KEY", ""),
			OpenAIModel:          getEnv("FRONTDESK_OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIEmbeddingModel: getEnv("FRONTDESK_OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
			AnthropicAPIKey:      getEnv("FRONTDESK_ANTHROPIC_API_KEY", ""),
			AnthropicModel:       getEnv("FRONTDESK_ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
		},
		Cache: CacheConfig{
			Engine:      getEnv("FRONTDESK_CACHE_ENGINE", "sqlite"),
			DataPath:    getEnv("FRONTDESK_DATA_PATH", "./data"),
			PostgresDSN: getEnv("FRONTDESK_POSTGRES_DSN", ""),
		},
		Security: SecurityConfig{
			SecurityMode: getEnv("FRONTDESK_SECURITY_MODE", "development"),
			APIToken:     getEnv("FRONTDESK_API_TOKEN", ""),
		},
	}

	if cfg.Agent.SimilarityThreshold < -1 || cfg.Agent.SimilarityThreshold > 1 {
		return nil, fmt.Errorf("config: similarity threshold %v out of range [-1, 1]",
			cfg.Agent.SimilarityThreshold)
	}

	return cfg, nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
// If the environment variable exists but cannot be parsed as an integer,
// it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a default value.
// If the environment variable exists but cannot be parsed as a float,
// it returns the default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
