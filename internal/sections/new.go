package sections

import (
	"github.com/vuhoanglam/recipe-flow/internal/llm"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
)

type implCleaner struct {
	client llm.Client
	logger logger.Logger
}

// New creates a Cleaner backed by the given LLM client.
func New(client llm.Client, log logger.Logger) Cleaner {
	return &implCleaner{
		client: client,
		logger: log,
	}
}
