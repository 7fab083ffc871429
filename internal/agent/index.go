package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/scrypster/frontdesk/internal/llm"
	"github.com/scrypster/frontdesk/internal/storage"
)

// DefaultSimilarityThreshold is the minimum cosine similarity for an
// embedding match to be considered confident.
const DefaultSimilarityThreshold = 0.55

// EmbeddingIndex holds the precomputed vector for every canonical question
// and variation in the knowledge base. Built once at startup and read-only
// afterward, so it may be shared across concurrent sessions without locking.
// Rebuilding requires re-deriving from the catalog; there is no incremental
// update.
type EmbeddingIndex struct {
	embedder  llm.EmbeddingGenerator
	questions []string
	vectors   [][]float32
	threshold float64
}

// BuildEmbeddingIndex encodes every question into a unit-normalized vector.
// Storage order follows the input order, which drives tie-breaking in Search.
// The cache is optional; on a miss the embedder is called and the result is
// backfilled. Any encoding failure aborts the build: the agent cannot serve
// queries without a complete index.
func BuildEmbeddingIndex(ctx context.Context, embedder llm.EmbeddingGenerator, cache storage.EmbeddingCache, questions []string, threshold float64) (*EmbeddingIndex, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("agent: no questions to index")
	}
	if threshold == 0 {
		threshold = DefaultSimilarityThreshold
	}

	ix := &EmbeddingIndex{
		embedder:  embedder,
		questions: make([]string, 0, len(questions)),
		vectors:   make([][]float32, 0, len(questions)),
		threshold: threshold,
	}

	dimension := 0
	for _, q := range questions {
		vec, err := ix.encode(ctx, cache, q)
		if err != nil {
			return nil, fmt.Errorf("agent: failed to encode question %q: %w", q, err)
		}
		if dimension == 0 {
			dimension = len(vec)
		} else if len(vec) != dimension {
			return nil, fmt.Errorf("agent: question %q has dimension %d, expected %d", q, len(vec), dimension)
		}
		ix.questions = append(ix.questions, q)
		ix.vectors = append(ix.vectors, normalize(vec))
	}

	return ix, nil
}

// encode returns the raw vector for text, consulting the cache first.
// Cache write failures are logged and ignored; the cache is an optimization.
func (ix *EmbeddingIndex) encode(ctx context.Context, cache storage.EmbeddingCache, text string) ([]float32, error) {
	model := ix.embedder.GetModel()

	if cache != nil {
		vec, err := cache.Get(ctx, model, text)
		if err == nil {
			return vec, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("agent: embedding cache read failed: %v", err)
		}
	}

	vec, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Put(ctx, model, text, vec); err != nil {
			log.Printf("agent: embedding cache write failed: %v", err)
		}
	}

	return vec, nil
}

// Search encodes the query and returns the stored question with the highest
// cosine similarity, provided it meets the threshold. On a sub-threshold
// maximum it returns question == "" together with the score for diagnostics.
// Exact score ties keep the first index in storage order (stable argmax).
//
// This is the expensive step of the cascade: one embedding call plus one
// pass over the stored vectors.
func (ix *EmbeddingIndex) Search(ctx context.Context, query string) (string, float64, error) {
	vec, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return "", 0, fmt.Errorf("agent: failed to encode query: %w", err)
	}
	queryVec := normalize(vec)

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i, stored := range ix.vectors {
		score := dot(stored, queryVec)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return "", 0, fmt.Errorf("agent: index is empty")
	}

	if bestScore >= ix.threshold {
		return ix.questions[bestIdx], bestScore, nil
	}
	return "", bestScore, nil
}

// Len returns the number of indexed questions.
func (ix *EmbeddingIndex) Len() int {
	return len(ix.questions)
}

// normalize scales v to unit length so similarity reduces to a dot product.
// A zero vector is returned unchanged.
func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// dot computes the dot product of two equal-length vectors, accumulating in
// float64. For unit-normalized vectors this equals cosine similarity.
func dot(a, b []float32) float64 {
	var sum float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
