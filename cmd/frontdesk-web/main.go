package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/scrypster/frontdesk/internal/agent"
	"github.com/scrypster/frontdesk/internal/config"
	"github.com/scrypster/frontdesk/internal/kb"
	"github.com/scrypster/frontdesk/internal/llm"
	"github.com/scrypster/frontdesk/internal/server"
	"github.com/scrypster/frontdesk/internal/storage"
	"github.com/scrypster/frontdesk/internal/storage/postgres"
	"github.com/scrypster/frontdesk/internal/storage/sqlite"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to a YAML catalog file (default: built-in catalog)")
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := agent.New(ctx, catalog, embedder, agent.Options{
		SimilarityThreshold: cfg.Agent.SimilarityThreshold,
		Fallback:            fallback,
		Cache:               cache,
	})
	if err != nil {
		log.Fatalf("Failed to initialize agent: %v", err)
	}

	addr, err := server.Start(ctx, cfg, a)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Printf("Frontdesk API running at http://%s (%d questions indexed)", addr, a.IndexSize())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	cancel()
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
