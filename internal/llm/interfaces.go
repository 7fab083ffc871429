package llm

import "context"

// TextGenerator is the interface for the optional external LLM fallback.
// The agent only consults it for queries that matched nothing in the
// knowledge base and carried no recognizable intent.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	GetModel() string
}

// EmbeddingGenerator is the interface for encoding text into the fixed-
// dimension vector space used by the embedding index. Vectors are returned
// unnormalized; the index normalizes them before storage.
type EmbeddingGenerator interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	GetModel() string
}

// HealthChecker is implemented by providers that can verify reachability.
// The embedding provider's health is checked at startup: the agent cannot
// serve any query without it.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
