package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/Htttpkaran/ai-resume-checker/internal/llm"
)

// Client implements llm.Client on top of the Gemini API. Construct it
// once at startup and share it; it is read-only after construction.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client. A missing credential fails here,
// before any network call is made.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required: %w", llm.ErrAuth)
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Analyze sends the prompt and returns the raw model text. A single
// call either returns text or fails; retries are the caller's problem.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil {
		return "", errors.New("Invalid response structure from Gemini API")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("Invalid response structure from Gemini API")
	}
	return text, nil
}

// classify maps upstream failures to the gateway error classes. Typed
// API codes are checked first; the substring heuristics only cover
// untyped transport errors, since upstream message wording is not
// stable across SDK versions.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w (%s)", llm.ErrAuth, apiErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w (%s)", llm.ErrQuotaExceeded, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w (%s)", llm.ErrModelUnavailable, apiErr.Message)
		}
		return fmt.Errorf("gemini api error: %s", apiErr.Message)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return fmt.Errorf("%w: %s", llm.ErrAuth, msg)
	case strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %s", llm.ErrQuotaExceeded, msg)
	case strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %s", llm.ErrModelUnavailable, msg)
	}
	return fmt.Errorf("gemini api error: %s", msg)
}

var _ llm.Client = (*Client)(nil)
