package llm

import (
	"fmt"

	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
)

// ErrMissingAPIKey is returned when a provider is configured without
// any API keys.
var ErrMissingAPIKey = fmt.Errorf("no API keys configured")

// New builds a Client for the configured provider.
func New(cfg config.LLMConfig, log logger.Logger) (Client, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, ErrMissingAPIKey
	}

	switch cfg.Provider {
	case "openai":
		return newOpenAI(cfg, log), nil
	case "gemini":
		return newGemini(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
