package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Rushabh16-9/travel-planner/internal/domain/trip"
	"github.com/Rushabh16-9/travel-planner/internal/infra/llm/openai"
)

// Service exposes the seasonal travel advisory capability.
type Service interface {
	Advise(ctx context.Context, req Request) Advisory
}

// ChatClient is the slice of the chat-completions client used for
// AI-generated advisories.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config carries model settings for the AI advisory path.
type Config struct {
	Model       string
	Temperature float32
}

type service struct {
	cfg    Config
	chat   ChatClient
	logger *slog.Logger
}

// NewService wires up the advisory domain. chat may be nil, in which case
// every advisory comes from the static seasonal table.
func NewService(cfg Config, chat ChatClient, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		chat:   chat,
		logger: logger.With("component", "advisory.service"),
	}
}

// Advise produces a verdict for the destination and travel window. It
// cannot fail: incomplete input yields a neutral advisory and any AI
// failure falls back to the static seasonal table.
func (s *service) Advise(ctx context.Context, req Request) Advisory {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" || req.FromDate == "" || req.ToDate == "" {
		return Advisory{
			Verdict: VerdictNeutral,
			Message: "Enter your destination and travel dates to get an AI advisory.",
		}
	}

	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		s.logger.Warn("unparsable fromDate, returning neutral advisory", "fromDate", req.FromDate, "error", err)
		return Advisory{
			Verdict: VerdictNeutral,
			Message: "Enter your destination and travel dates to get an AI advisory.",
		}
	}

	if s.chat != nil {
		if adv, ok := s.adviseWithAI(ctx, req, from); ok {
			return adv
		}
	}

	adv := staticAdvisory(req.Destination, from)
	s.logger.Info("static advisory served", "destination", req.Destination, "verdict", adv.Verdict, "season", adv.Season)
	return adv
}

func (s *service) adviseWithAI(ctx context.Context, req Request, from time.Time) (Advisory, bool) {
	nights := 0
	if to, err := time.Parse("2006-01-02", req.ToDate); err == nil {
		nights = int(to.Sub(from).Hours() / 24)
	}

	prompt := fmt.Sprintf(`You are a travel advisor AI. Give a detailed travel advisory for visiting %s from %s to %s (%d nights, arriving in %s %d).

Consider: weather, temperature, peak/off-season, local events, festivals, monsoon/hurricane/storm season, crowd levels, value for money.

Respond with ONLY a JSON object — no markdown, no code fences:
{
  "verdict": "good" | "warning" | "poor",
  "headline": "Short punchy title max 8 words",
  "message": "1-2 sentences explaining the conditions in detail.",
  "temp": "e.g. 28°C / 82°F",
  "season": "e.g. Dry Season or Peak Season"
}`, req.Destination, req.FromDate, req.ToDate, nights, from.Month().String(), from.Year())

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.Message{
			{Role: "system", Content: "You are a travel advisor. Return ONLY valid JSON. No markdown, no extra text."},
			{Role: "user", Content: prompt},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   200,
	})
	if err != nil {
		s.logger.Warn("ai advisory failed, falling back to static table", "error", err)
		return Advisory{}, false
	}

	payload, ok := trip.ExtractJSON(resp.Choices[0].Message.Content)
	if !ok {
		s.logger.Warn("ai advisory returned no JSON object")
		return Advisory{}, false
	}

	var adv Advisory
	if err := json.Unmarshal([]byte(payload), &adv); err != nil {
		s.logger.Warn("ai advisory returned unparsable JSON", "error", err)
		return Advisory{}, false
	}
	if adv.Verdict == "" || adv.Message == "" {
		s.logger.Warn("ai advisory incomplete, falling back to static table")
		return Advisory{}, false
	}

	s.logger.Info("ai advisory served", "destination", req.Destination, "verdict", adv.Verdict)
	return adv, true
}
