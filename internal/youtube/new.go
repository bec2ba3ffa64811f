package youtube

import (
	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
	"github.com/vuhoanglam/recipe-flow/pkg/executor"
)

type implFetcher struct {
	ytdlpPath string
	tempDir   string
	executor  executor.Executor
	logger    logger.Logger
}

// New creates a Fetcher shelling out to the configured yt-dlp binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		ytdlpPath: cfg.YouTube.YtdlpPath,
		tempDir:   cfg.Paths.Temp,
		executor:  exec,
		logger:    log,
	}
}
