package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/textsim"
)

// newLogger builds the process logger. Errors here are unrecoverable.
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// buildEngine assembles the matching engine from configuration. The
// returned cleanup function releases the embedding client, if any.
func buildEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*engine.Engine, func(), error) {
	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(cfg.TaxonomyPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading taxonomy: %w", err)
		}
	}

	var backend textsim.Similarity
	cleanup := func() {}
	if cfg.APIKey != "" {
		embedding, err := textsim.NewGeminiEmbedding(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, nil, fmt.Errorf("creating embedding client: %w", err)
		}
		backend = embedding
		cleanup = func() { _ = embedding.Close() }
	}

	semantic := textsim.NewSemanticMatcher(backend, logger)
	logger.Info("semantic backend selected", zap.String("backend", semantic.BackendName()))

	eng := engine.New(tax, semantic, cfg.Weights(), logger)
	return eng, cleanup, nil
}
