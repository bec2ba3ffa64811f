package extractor

import (
	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/llm"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
)

type implExtractor struct {
	client        llm.Client
	logger        logger.Logger
	temperature   float64
	maxTokens     int
	maxIterations int
	maxRecipes    int
}

// New creates an Extractor using the configured call limits.
func New(client llm.Client, cfg config.LLMConfig, log logger.Logger) Extractor {
	return &implExtractor{
		client:        client,
		logger:        log,
		temperature:   cfg.Temperature,
		maxTokens:     cfg.MaxTokens,
		maxIterations: cfg.MaxIterations,
		maxRecipes:    cfg.MaxRecipes,
	}
}
