package trip

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rushabh16-9/travel-planner/pkg/metrics"
)

type stubProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, metrics.TokenUsage, error) {
	p.calls++
	return p.text, metrics.TokenUsage{}, p.err
}

const validItineraryJSON = `{
  "destination": "Rome, Italy",
  "duration": 2,
  "totalCost": 1200,
  "currency": "USD",
  "itinerary": [
    {"day": 1, "date": "Day 1", "activities": [
      {"time": "09:00 AM", "title": "Colosseum", "description": "Tour", "vibe": "Culture", "estimatedCost": 20, "importance": "High", "transportFromPrevious": null}
    ]},
    {"day": 2, "date": "Day 2", "activities": [
      {"time": "10:00 AM", "title": "Vatican", "description": "Museums", "vibe": "Culture", "estimatedCost": 30, "importance": "High", "transportFromPrevious": {"mode": "Metro", "cost": 2}}
    ]}
  ]
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChainFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "groq", text: validItineraryJSON}
	second := &stubProvider{name: "ollama", text: validItineraryJSON}

	it, provider, ok := NewChain(testLogger(), first, second).Execute(context.Background(), "sys", "user")
	require.True(t, ok)
	require.Equal(t, "groq", provider)
	require.Equal(t, "Rome, Italy", it.Destination)
	require.Equal(t, 2, it.Duration)
	require.Len(t, it.Days, 2)
	require.Equal(t, 1, first.calls)
	require.Zero(t, second.calls)
}

func TestChainAdvancesOnError(t *testing.T) {
	first := &stubProvider{name: "groq", err: errors.New("rate limited")}
	second := &stubProvider{name: "ollama", text: validItineraryJSON}

	_, provider, ok := NewChain(testLogger(), first, second).Execute(context.Background(), "sys", "user")
	require.True(t, ok)
	require.Equal(t, "ollama", provider)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, second.calls)
}

func TestChainAdvancesOnProseResponse(t *testing.T) {
	// A successful HTTP call whose body holds no JSON object still counts
	// as a failed attempt.
	first := &stubProvider{name: "groq", text: "I'm sorry, I can't produce an itinerary."}
	second := &stubProvider{name: "ollama", text: validItineraryJSON}

	_, provider, ok := NewChain(testLogger(), first, second).Execute(context.Background(), "sys", "user")
	require.True(t, ok)
	require.Equal(t, "ollama", provider)
}

func TestChainAdvancesOnUnparsableJSON(t *testing.T) {
	first := &stubProvider{name: "groq", text: `{"duration": "not a number"}`}
	second := &stubProvider{name: "ollama", text: validItineraryJSON}

	_, provider, ok := NewChain(testLogger(), first, second).Execute(context.Background(), "sys", "user")
	require.True(t, ok)
	require.Equal(t, "ollama", provider)
}

func TestChainAdvancesOnEmptyItinerary(t *testing.T) {
	first := &stubProvider{name: "groq", text: `{"destination": "Rome", "duration": 0, "itinerary": []}`}
	second := &stubProvider{name: "ollama", text: validItineraryJSON}

	_, provider, ok := NewChain(testLogger(), first, second).Execute(context.Background(), "sys", "user")
	require.True(t, ok)
	require.Equal(t, "ollama", provider)
}

func TestChainExhausted(t *testing.T) {
	first := &stubProvider{name: "groq", err: errors.New("boom")}
	second := &stubProvider{name: "ollama", text: "no json here"}

	_, _, ok := NewChain(testLogger(), first, second).Execute(context.Background(), "sys", "user")
	require.False(t, ok)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, second.calls)
}

func TestChainEmpty(t *testing.T) {
	_, _, ok := NewChain(testLogger()).Execute(context.Background(), "sys", "user")
	require.False(t, ok)
}

func TestChainNames(t *testing.T) {
	chain := NewChain(testLogger(),
		&stubProvider{name: "groq"},
		&stubProvider{name: "ollama"},
		&stubProvider{name: "gemini"},
	)
	require.Equal(t, []string{"groq", "ollama", "gemini"}, chain.Names())
}

func TestChainParsesFencedJSON(t *testing.T) {
	fenced := "Here is your itinerary:\n```json\n" + validItineraryJSON + "\n```\nEnjoy!"
	first := &stubProvider{name: "groq", text: fenced}

	it, _, ok := NewChain(testLogger(), first).Execute(context.Background(), "sys", "user")
	require.True(t, ok)
	require.Equal(t, "Rome, Italy", it.Destination)
}

func TestExtractJSON(t *testing.T) {
	payload, ok := ExtractJSON(`prefix {"a": 1} suffix`)
	require.True(t, ok)
	require.Equal(t, `{"a": 1}`, payload)

	payload, ok = ExtractJSON(`{"a": {"b": 2}}`)
	require.True(t, ok)
	require.Equal(t, `{"a": {"b": 2}}`, payload)

	_, ok = ExtractJSON("no braces at all")
	require.False(t, ok)

	_, ok = ExtractJSON("} {")
	require.False(t, ok)
}
