package llm

import "context"

// Request is a single chat completion call.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Client sends prompts to a chat model and returns the raw text reply.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}
