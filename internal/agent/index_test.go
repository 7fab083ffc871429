package agent

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/scrypster/frontdesk/internal/storage"
)

// stubEmbedder produces deterministic bag-of-words vectors: each lowercase
// token is hashed into one of dim buckets. Identical texts always produce
// identical vectors, so an exact question match scores 1.0 after
// normalization.
type stubEmbedder struct {
	dim   int
	calls int
	fail  bool
}

func newStubEmbedder() *stubEmbedder {
	return &stubEmbedder{dim: 64}
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("embedder unavailable")
	}
	vec := make([]float32, s.dim)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vec[h.Sum32()%uint32(s.dim)]++
	}
	return vec, nil
}

func (s *stubEmbedder) GetModel() string {
	return "stub-bow"
}

// memoryCache is an in-memory EmbeddingCache for tests.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]float32
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]float32)}
}

func (c *memoryCache) Get(ctx context.Context, model, text string) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vec, ok := c.data[model+"/"+storage.TextKey(text)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return vec, nil
}

func (c *memoryCache) Put(ctx context.Context, model, text string, vector []float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[model+"/"+storage.TextKey(text)] = vector
	return nil
}

func (c *memoryCache) Close() error { return nil }

func TestBuildEmbeddingIndex_OrderAndLength(t *testing.T) {
	questions := []string{"What is EVA?", "What is CAM?", "What is PHIL?"}

	ix, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil, questions, 0)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	if ix.Len() != len(questions) {
		t.Fatalf("expected %d indexed questions, got %d", len(questions), ix.Len())
	}
	for i, q := range questions {
		if ix.questions[i] != q {
			t.Errorf("storage order broken at %d: expected %q, got %q", i, q, ix.questions[i])
		}
		if len(ix.vectors[i]) != 64 {
			t.Errorf("vector %d has dimension %d, expected 64", i, len(ix.vectors[i]))
		}
	}
}

func TestBuildEmbeddingIndex_VectorsAreUnitNormalized(t *testing.T) {
	ix, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil,
		[]string{"how does the claims processing agent work"}, 0)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	var sum float64
	for _, x := range ix.vectors[0] {
		sum += float64(x) * float64(x)
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("stored vector is not unit length: squared norm = %f", sum)
	}
}

func TestBuildEmbeddingIndex_EmptyQuestions(t *testing.T) {
	if _, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil, nil, 0); err == nil {
		t.Fatal("expected an error for an empty question list")
	}
}

func TestBuildEmbeddingIndex_EmbedFailureIsFatal(t *testing.T) {
	embedder := newStubEmbedder()
	embedder.fail = true

	if _, err := BuildEmbeddingIndex(context.Background(), embedder, nil, []string{"What is EVA?"}, 0); err == nil {
		t.Fatal("expected an error when the embedding provider fails during build")
	}
}

func TestSearch_ExactMatchScoresMaximum(t *testing.T) {
	questions := []string{"What is EVA?", "What is CAM?"}
	ix, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil, questions, 0)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	question, score, err := ix.Search(context.Background(), "What is EVA?")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if question != "What is EVA?" {
		t.Errorf("expected exact question match, got %q", question)
	}
	if math.Abs(score-1.0) > 1e-6 {
		t.Errorf("exact match should score 1.0, got %f", score)
	}
}

func TestSearch_BelowThresholdReturnsScoreOnly(t *testing.T) {
	ix, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil,
		[]string{"What is EVA?"}, 0.99)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	question, score, err := ix.Search(context.Background(), "completely unrelated zebra question")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if question != "" {
		t.Errorf("expected no match, got %q", question)
	}
	if score >= 0.99 {
		t.Errorf("diagnostic score should be sub-threshold, got %f", score)
	}
}

func TestSearch_StableArgmaxOnTies(t *testing.T) {
	// Two identical stored questions produce identical vectors; the first
	// index in storage order must win.
	questions := []string{"What is CAM?", "What is CAM?"}
	ix, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil, questions, 0)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	question, _, err := ix.Search(context.Background(), "What is CAM?")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if question != ix.questions[0] {
		t.Errorf("tie should keep the first stored question")
	}
}

func TestSearch_Deterministic(t *testing.T) {
	ix, err := BuildEmbeddingIndex(context.Background(), newStubEmbedder(), nil,
		[]string{"What is EVA?", "What is CAM?"}, 0)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	_, first, err := ix.Search(context.Background(), "tell me about EVA")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	_, second, err := ix.Search(context.Background(), "tell me about EVA")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if first != second {
		t.Errorf("scores must be bit-for-bit repeatable: %v vs %v", first, second)
	}
}

func TestSearch_QueryEncodeFailure(t *testing.T) {
	embedder := newStubEmbedder()
	ix, err := BuildEmbeddingIndex(context.Background(), embedder, nil, []string{"What is EVA?"}, 0)
	if err != nil {
		t.Fatalf("BuildEmbeddingIndex failed: %v", err)
	}

	embedder.fail = true
	if _, _, err := ix.Search(context.Background(), "What is EVA?"); err == nil {
		t.Fatal("expected an error when query encoding fails")
	}
}

func TestBuildEmbeddingIndex_CacheAvoidsReencoding(t *testing.T) {
	questions := []string{"What is EVA?", "What is CAM?", "What is PHIL?"}
	cache := newMemoryCache()

	first := newStubEmbedder()
	if _, err := BuildEmbeddingIndex(context.Background(), first, cache, questions, 0); err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	if first.calls != len(questions) {
		t.Fatalf("expected %d embed calls on cold cache, got %d", len(questions), first.calls)
	}

	second := newStubEmbedder()
	if _, err := BuildEmbeddingIndex(context.Background(), second, cache, questions, 0); err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if second.calls != 0 {
		t.Errorf("expected 0 embed calls on warm cache, got %d", second.calls)
	}
}

func TestNormalize_ZeroVectorUnchanged(t *testing.T) {
	v := []float32{0, 0, 0}
	out := normalize(v)
	for i, x := range out {
		if x != 0 {
			t.Errorf("zero vector changed at %d: %f", i, x)
		}
	}
}
