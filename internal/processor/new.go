package processor

import (
	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/exporter"
	"github.com/vuhoanglam/recipe-flow/internal/extractor"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
	"github.com/vuhoanglam/recipe-flow/internal/sections"
)

type implProcessor struct {
	cfg       *config.Config
	cleaner   sections.Cleaner
	extractor extractor.Extractor
	exporter  exporter.Exporter
	logger    logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, cleaner sections.Cleaner, ex extractor.Extractor, exp exporter.Exporter, log logger.Logger) Processor {
	return &implProcessor{
		cfg:       cfg,
		cleaner:   cleaner,
		extractor: ex,
		exporter:  exp,
		logger:    log,
	}
}
