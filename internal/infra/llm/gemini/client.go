package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps a Google generative model for free-text generation.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient initializes a Gemini client.
func NewClient(ctx context.Context, apiKey, model string, temperature float32) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetTemperature(temperature)

	return &Client{client: client, model: m}, nil
}

// Close releases the underlying gRPC resources.
func (c *Client) Close() {
	c.client.Close()
}

// GenerateText sends the prompt and concatenates every text part of the
// first candidate. Gemini has no system role on this surface, so callers
// fold any system instructions into the prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", errors.New("gemini returned no text parts")
	}
	return out.String(), nil
}
