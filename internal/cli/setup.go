package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/partwatch/partwatch/internal/config"
	"github.com/partwatch/partwatch/internal/engine"
	"github.com/partwatch/partwatch/internal/lifespan"
	"github.com/partwatch/partwatch/internal/llm"
	"github.com/partwatch/partwatch/internal/store"
	"github.com/partwatch/partwatch/internal/websearch"
)

// loadConfig reads the config file and overlays credential env vars.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// openStore opens the database at the configured (or default) path.
func openStore(cfg config.Config) (*store.DB, error) {
	path := cfg.Database.Path
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
	}
	return store.Open(path)
}

// buildResolver assembles the lifespan cascade from whatever credentials are
// configured. Missing AI or search configuration shrinks the cascade instead
// of failing: the category stage is always present, so the resolver stays a
// total function.
func buildResolver(cfg config.Config) *lifespan.Resolver {
	classifier := lifespan.NewClassifier(lifespan.DefaultRules(), cfg.Lifespan.DefaultMonths)

	var stages []lifespan.Stage

	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM not configured (%v), AI lifespan stage disabled\n", err)
	} else {
		stages = append(stages, &lifespan.AIStage{Client: llmClient, Classifier: classifier})

		searchClient, err := websearch.NewClient(cfg.Search)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: search not configured (%v), online lifespan stage disabled\n", err)
		} else {
			stages = append(stages, &lifespan.OnlineStage{Search: searchClient, LLM: llmClient})
		}
	}

	timeout := time.Duration(cfg.Lifespan.StageTimeoutSeconds) * time.Second
	return lifespan.NewResolver(classifier, timeout, stages...)
}

func cacheMaxAge(cfg config.Config) time.Duration {
	return time.Duration(cfg.Lifespan.CacheDays) * 24 * time.Hour
}

func buildPredictor(cfg config.Config, db *store.DB, resolver *lifespan.Resolver) *engine.Predictor {
	return &engine.Predictor{
		DB:          db,
		Resolver:    resolver,
		Workers:     cfg.Lifespan.Workers,
		CacheMaxAge: cacheMaxAge(cfg),
	}
}

func buildScanner(cfg config.Config, db *store.DB, resolver *lifespan.Resolver) *engine.Scanner {
	return &engine.Scanner{
		DB:          db,
		Resolver:    resolver,
		Workers:     cfg.Lifespan.Workers,
		CacheMaxAge: cacheMaxAge(cfg),
	}
}
