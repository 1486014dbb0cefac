package llm

import (
	"context"
	"errors"
)

// Client abstracts the generative-AI provider behind the analysis pipeline.
type Client interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Gateway error classes. Handlers map all of these to HTTP 500; the
// distinct kinds exist so the client sees an actionable message.
var (
	ErrAuth             = errors.New("Invalid API key. Please check your Gemini API configuration.")
	ErrQuotaExceeded    = errors.New("API quota exceeded. Please try again later.")
	ErrModelUnavailable = errors.New("Model not available. Please try again or contact support.")
)
