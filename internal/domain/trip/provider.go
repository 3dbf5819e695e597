package trip

import (
	"context"

	"github.com/Rushabh16-9/travel-planner/internal/infra/llm/ollama"
	"github.com/Rushabh16-9/travel-planner/internal/infra/llm/openai"
	"github.com/Rushabh16-9/travel-planner/pkg/metrics"
)

// Provider is one itinerary generation backend. Implementations take the
// prompts, return raw model text, and report token usage when the vendor
// exposes it. JSON extraction and parsing happen in the chain so every
// provider shares the same tolerance for prose-wrapped output.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, metrics.TokenUsage, error)
}

// ChatCompleter is the slice of the OpenAI-compatible client the adapters
// depend on.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// StreamChatter is the slice of the Ollama client the adapter depends on.
type StreamChatter interface {
	Chat(ctx context.Context, req ollama.ChatRequest) (string, error)
}

// TextGenerator is the slice of the Gemini client the adapter depends on.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// OpenAICompatProvider adapts any OpenAI-dialect vendor (Groq, Moonshot)
// to the Provider interface.
type OpenAICompatProvider struct {
	name        string
	client      ChatCompleter
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAICompatProvider builds a named chat-completions provider.
func NewOpenAICompatProvider(name string, client ChatCompleter, model string, temperature float32, maxTokens int) *OpenAICompatProvider {
	return &OpenAICompatProvider{
		name:        name,
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *OpenAICompatProvider) Name() string { return p.name }

func (p *OpenAICompatProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, metrics.TokenUsage, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", metrics.TokenUsage{}, err
	}
	return resp.Choices[0].Message.Content, resp.TokenUsage(), nil
}

// OllamaProvider adapts the self-hosted streaming endpoint.
type OllamaProvider struct {
	client      StreamChatter
	model       string
	temperature float32
}

// NewOllamaProvider builds the local inference provider.
func NewOllamaProvider(client StreamChatter, model string, temperature float32) *OllamaProvider {
	return &OllamaProvider{client: client, model: model, temperature: temperature}
}

func (p *OllamaProvider) Name() string { return "ollama" }

func (p *OllamaProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, metrics.TokenUsage, error) {
	content, err := p.client.Chat(ctx, ollama.ChatRequest{
		Model: p.model,
		Messages: []ollama.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Options: map[string]any{"temperature": p.temperature},
	})
	if err != nil {
		return "", metrics.TokenUsage{}, err
	}
	return content, metrics.TokenUsage{}, nil
}

// GeminiProvider adapts the generative-text fallback vendor. Gemini takes
// one combined prompt, so the system instructions are prepended.
type GeminiProvider struct {
	client TextGenerator
}

// NewGeminiProvider builds the last-resort generative provider.
func NewGeminiProvider(client TextGenerator) *GeminiProvider {
	return &GeminiProvider{client: client}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, metrics.TokenUsage, error) {
	text, err := p.client.GenerateText(ctx, systemPrompt+"\n\n"+userPrompt)
	if err != nil {
		return "", metrics.TokenUsage{}, err
	}
	return text, metrics.TokenUsage{}, nil
}
