package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
)

type implGemini struct {
	apiKeys     []string
	currentKey  int
	model       string
	temperature float64
	logger      logger.Logger
}

func newGemini(cfg config.LLMConfig, log logger.Logger) Client {
	return &implGemini{
		apiKeys:     cfg.APIKeys,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      log,
	}
}

func (c *implGemini) Model() string { return c.model }

// Complete sends one request to Gemini. Rotates API keys on 429 / quota
// errors before giving up.
func (c *implGemini) Complete(ctx context.Context, req Request) (string, error) {
	prompt := req.User
	if req.System != "" {
		prompt = req.System + "\n\n" + req.User
	}

	temp := float32(req.Temperature)
	genCfg := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implGemini) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
