package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/scrypster/frontdesk/internal/agent"
	"github.com/scrypster/frontdesk/internal/config"
	"github.com/scrypster/frontdesk/internal/kb"
	"github.com/scrypster/frontdesk/internal/llm"
	"github.com/scrypster/frontdesk/internal/storage"
	"github.com/scrypster/frontdesk/internal/storage/postgres"
	"github.com/scrypster/frontdesk/internal/storage/sqlite"
	"github.com/scrypster/frontdesk/pkg/types"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to a YAML catalog file (default: built-in catalog)")
	showSource := flag.Bool("source", false, "Show source and confidence for each answer")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	catalog, err := kb.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	embedder, err := llm.NewEmbeddingGenerator(cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to create embedding provider: %v", err)
	}

	fallback, err := llm.NewFallbackGenerator(cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to create fallback provider: %v", err)
	}

	cache := openCache(cfg)
	if cache != nil {
		defer cache.Close()
	}

	ctx := context.Background()

	fmt.Fprintln(os.Stderr, "Preparing the support agent...")
	a, err := agent.New(ctx, catalog, embedder, agent.Options{
		SimilarityThreshold: cfg.Agent.SimilarityThreshold,
		Fallback:            fallback,
		Cache:               cache,
	})
	if err != nil {
		log.Fatalf("Failed to initialize agent: %v", err)
	}
	fmt.Fprintln(os.Stderr, "Agent ready!")

	fmt.Println("Frontdesk support agent. Ask about EVA, CAM, or PHIL. Type 'exit' to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := scanner.Text()

		result := a.Respond(ctx, query)
		printResult(result, *showSource)

		trimmed := strings.ToLower(strings.TrimSpace(query))
		if trimmed == "exit" || trimmed == "quit" {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}

func printResult(result types.MatchResult, showSource bool) {
	fmt.Println(result.Text)
	if showSource {
		if result.Confidence != nil {
			fmt.Printf("  [source=%s confidence=%.2f]\n", result.Source, *result.Confidence)
		} else {
			fmt.Printf("  [source=%s]\n", result.Source)
		}
	}
	fmt.Println()
}

// openCache opens the configured embedding cache. Cache failures are not
// fatal: the agent just re-encodes the catalog on startup.
func openCache(cfg *config.Config) storage.EmbeddingCache {
	switch cfg.Cache.Engine {
	case "sqlite":
		cache, err := sqlite.NewCache(cfg.Cache.DataPath)
		if err != nil {
			log.Printf("Warning: sqlite embedding cache unavailable: %v", err)
			return nil
		}
		return cache
	case "postgres":
		cache, err := postgres.NewCache(cfg.Cache.PostgresDSN)
		if err != nil {
			log.Printf("Warning: postgres embedding cache unavailable: %v", err)
			return nil
		}
		return cache
	default:
		return nil
	}
}
