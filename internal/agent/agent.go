// Package agent implements the matcher cascade at the heart of Frontdesk.
//
// A query is tried against each matcher in strict priority order, short-
// circuiting on the first confident match: facet keywords, then embedding
// similarity, then intent classification with an optional external LLM
// fallback, then generic responses. Exactly one terminal result is produced
// per query.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/scrypster/frontdesk/internal/kb"
	"github.com/scrypster/frontdesk/internal/llm"
	"github.com/scrypster/frontdesk/internal/storage"
	"github.com/scrypster/frontdesk/pkg/types"
)

// FacetMatchConfidence is reported for every facet match. It is a fixed
// policy constant, not derived from the word-overlap score, deliberately
// kept above the similarity threshold so facet matches always read as
// confident.
const FacetMatchConfidence = 0.85

// emptyQueryMessage is returned for empty or whitespace-only input.
const emptyQueryMessage = "Please enter a valid question."

// Agent answers free-text questions about a fixed set of topics.
//
// The catalog, facet index, and embedding index are built once in New and
// read-only afterward; they may be shared across concurrent sessions. The
// response bank cursors are the only mutable state and synchronize
// internally.
type Agent struct {
	catalog  *kb.Catalog
	facets   *kb.FacetIndex
	index    *EmbeddingIndex
	bank     *ResponseBank
	fallback llm.TextGenerator
}

// Options configures optional agent behavior.
type Options struct {
	// SimilarityThreshold overrides DefaultSimilarityThreshold when non-zero.
	SimilarityThreshold float64

	// Fallback is the optional external LLM consulted for queries with no
	// match and no recognizable intent. Nil means the capability is absent.
	Fallback llm.TextGenerator

	// Cache is the optional embedding cache consulted during the index build.
	Cache storage.EmbeddingCache
}

// New builds an agent from the catalog: the facet index, then the embedding
// index. An embedding failure here is fatal — the agent cannot serve any
// query without its index — and is returned rather than degraded.
func New(ctx context.Context, catalog *kb.Catalog, embedder llm.EmbeddingGenerator, opts Options) (*Agent, error) {
	if catalog == nil {
		return nil, fmt.Errorf("agent: catalog is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("agent: embedding generator is required")
	}

	if hc, ok := embedder.(llm.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return nil, fmt.Errorf("agent: embedding provider unavailable: %w", err)
		}
	}

	index, err := BuildEmbeddingIndex(ctx, embedder, opts.Cache, catalog.Questions(), opts.SimilarityThreshold)
	if err != nil {
		return nil, err
	}

	return &Agent{
		catalog:  catalog,
		facets:   kb.BuildFacetIndex(catalog),
		index:    index,
		bank:     NewResponseBank(),
		fallback: opts.Fallback,
	}, nil
}

// Respond runs the query through the cascade and returns exactly one result.
//
// Stages, first confident match wins:
//  1. Empty input is rejected outright and never reaches a matcher.
//  2. Facet lookup: functional phrasing ("handle claims") with the fixed
//     confidence constant.
//  3. Embedding similarity: the matched question's answer with the raw
//     cosine score as confidence.
//  4. Intent classification, then the external LLM for unknown intents when
//     configured. LLM failures of any kind fall through silently — they are
//     never surfaced to the caller.
//  5. Generic response for the classified intent.
func (a *Agent) Respond(ctx context.Context, query string) types.MatchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return types.MatchResult{
			Text:   emptyQueryMessage,
			Source: types.SourceError,
		}
	}

	if answer, ok := a.facets.Lookup(query); ok {
		return types.MatchResult{
			Text:       answer,
			Source:     types.SourcePredefined,
			Confidence: types.ConfidenceOf(FacetMatchConfidence),
		}
	}

	question, score, err := a.index.Search(ctx, query)
	if err != nil {
		// Query-time encode failures degrade to the intent stage; only
		// init-time embedding failures are fatal.
		log.Printf("agent: embedding search failed: %v", err)
	} else if question != "" {
		answer, ok := a.catalog.AnswerFor(question)
		if !ok {
			// Index and catalog are built from the same questions, so this
			// indicates a corrupted build.
			log.Printf("agent: matched question %q has no catalog answer", question)
		} else {
			return types.MatchResult{
				Text:       answer,
				Source:     types.SourcePredefined,
				Confidence: types.ConfidenceOf(score),
			}
		}
	}

	intent := ClassifyIntent(query)

	if intent == types.IntentUnknown && a.fallback != nil {
		if text, err := a.fallback.Complete(ctx, query); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				return types.MatchResult{
					Text:   text,
					Source: types.SourceLLM,
				}
			}
		} else {
			log.Printf("agent: llm fallback failed: %v", err)
		}
		// Timeout, auth error, empty content — all degrade identically.
	}

	text, source := a.bank.Next(intent)
	return types.MatchResult{
		Text:   text,
		Source: source,
	}
}

// Reset rewinds the response rotation cursors without rebuilding the
// indexes. Primarily for tests.
func (a *Agent) Reset() {
	a.bank.Reset()
}

// IndexSize returns the number of questions in the embedding index.
func (a *Agent) IndexSize() int {
	return a.index.Len()
}

// FallbackConfigured reports whether an external LLM fallback is present.
func (a *Agent) FallbackConfigured() bool {
	return a.fallback != nil
}
