package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/vuhoanglam/recipe-flow/internal/config"
	"github.com/vuhoanglam/recipe-flow/internal/logger"
)

type implOpenAI struct {
	client openai.Client
	model  string
	logger logger.Logger
}

func newOpenAI(cfg config.LLMConfig, log logger.Logger) Client {
	client := openai.NewClient(option.WithAPIKey(cfg.APIKeys[0]))
	return &implOpenAI{
		client: client,
		model:  cfg.Model,
		logger: log,
	}
}

func (c *implOpenAI) Model() string { return c.model }

// Complete sends one chat request and returns the raw reply text.
// Responses are requested in JSON object mode so the model cannot wrap
// its answer in prose or markdown fences.
func (c *implOpenAI) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Model:       c.model,
		Temperature: openai.Float(req.Temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{Type: "json_object"},
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if raw == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return raw, nil
}
