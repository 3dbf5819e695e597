package trip

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// Chain tries providers in priority order. Each provider gets exactly one
// attempt per request; any failure (transport, vendor error, missing or
// unparsable JSON) advances to the next provider. The chain itself never
// returns an error; exhaustion is reported through ok=false and absorbed
// by the deterministic fallback upstream.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

// NewChain builds an executor over the configured providers, preserving
// the given order.
func NewChain(logger *slog.Logger, providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		logger:    logger.With("component", "trip.chain"),
	}
}

// Names lists the configured providers in attempt order.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Execute runs the chain and returns the first successfully parsed
// itinerary along with the winning provider's name.
func (c *Chain) Execute(ctx context.Context, systemPrompt, userPrompt string) (Itinerary, string, bool) {
	for _, p := range c.providers {
		text, usage, err := p.Generate(ctx, systemPrompt, userPrompt)
		if err != nil {
			c.logger.Warn("provider attempt failed", "provider", p.Name(), "error", err)
			continue
		}

		payload, ok := ExtractJSON(text)
		if !ok {
			c.logger.Warn("provider returned no JSON object", "provider", p.Name())
			continue
		}

		var it Itinerary
		if err := json.Unmarshal([]byte(payload), &it); err != nil {
			c.logger.Warn("provider returned unparsable JSON", "provider", p.Name(), "error", err)
			continue
		}
		if !it.Valid() {
			c.logger.Warn("provider returned structurally empty itinerary", "provider", p.Name())
			continue
		}

		if usage.IsZero() {
			c.logger.Info("provider succeeded", "provider", p.Name())
		} else {
			c.logger.Info("provider succeeded", "provider", p.Name(), "totalTokens", usage.TotalTokens)
		}
		return it, p.Name(), true
	}
	return Itinerary{}, "", false
}

// ExtractJSON returns the substring between the first '{' and the last '}'
// of text, tolerating surrounding prose or code-fence markup.
func ExtractJSON(text string) (string, bool) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last <= first {
		return "", false
	}
	return text[first : last+1], true
}
