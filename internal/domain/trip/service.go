package trip

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/Rushabh16-9/travel-planner/pkg/errors"
)

// Service exposes the trip planning capability.
type Service interface {
	Plan(ctx context.Context, req Request) (Itinerary, error)
	ProviderNames() []string
}

// Config carries the domain-level tuning knobs.
type Config struct {
	CacheTTL time.Duration
}

const (
	defaultDays  = 3
	safeDays     = 7
	maxDays      = 365
	defaultGuest = 2
)

type service struct {
	cfg        Config
	aggregator *contextAggregator
	chain      *Chain
	store      Store
	logger     *slog.Logger
}

// NewService wires up the planning domain. Any of the lookup clients may
// be nil; the aggregator degrades per lookup. The store may be nil to
// disable caching.
func NewService(cfg Config, geocoder Geocoder, weather WeatherClient, poi POIClient, images ImageClient, chain *Chain, store Store, logger *slog.Logger) Service {
	log := logger.With("component", "trip.service")
	return &service{
		cfg: cfg,
		aggregator: &contextAggregator{
			geocoder: geocoder,
			weather:  weather,
			poi:      poi,
			images:   images,
			logger:   log,
		},
		chain:  chain,
		store:  store,
		logger: log,
	}
}

// Plan orchestrates one request: context aggregation, budget resolution,
// prompt building, the provider chain, and the deterministic fallback.
// Once the destination validates, Plan cannot fail: provider exhaustion
// is absorbed, never surfaced.
func (s *service) Plan(ctx context.Context, req Request) (Itinerary, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return Itinerary{}, apperrors.Wrap("invalid_input", "destination is required", nil)
	}

	days := normalizeDays(req.Days)
	guests := req.Guests
	if guests <= 0 {
		guests = defaultGuest
	}

	tc := s.aggregator.Gather(ctx, req.Destination)

	destination := req.Destination
	if tc.Place != nil {
		destination = tc.Place.Formatted
	}

	currency := ResolveCurrency(req.Currency, req.Budget)
	fxRate := FXRate(currency)
	budget := ResolveBudget(req, req.Destination, fxRate, guests, days)

	s.logger.Info("planning trip",
		"destination", req.Destination,
		"days", days,
		"guests", guests,
		"currency", currency,
		"budget", budget,
		"geocoded", tc.Place != nil,
	)

	key := CacheKey(destination, days, guests, budget, currency, req.Origin, req.FromDate, req.ToDate)
	if s.store != nil {
		if cached, ok, err := s.store.Get(ctx, key); err != nil {
			s.logger.Warn("itinerary cache read failed", "error", err)
		} else if ok {
			s.logger.Info("itinerary served from cache", "key", key)
			return cached, nil
		}
	}

	userPrompt := BuildUserPrompt(PromptParams{
		Destination: destination,
		Days:        days,
		Origin:      req.Origin,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Guests:      guests,
		Currency:    currency,
		Budget:      budget,
		WeatherLine: tc.WeatherLine(),
		POIs:        tc.POIs,
		BudgetText:  req.Budget,
	})
	s.logger.Debug("prompt built", "promptTokens", CountTokens(userPrompt))

	it, provider, ok := s.chain.Execute(ctx, SystemPrompt, userPrompt)
	if !ok {
		s.logger.Warn("all providers failed, using static itinerary fallback")
		origin := req.Origin
		if origin == "" {
			origin = "your city"
		}
		it = BuildStaticItinerary(destination, days, budget, currency, origin, guests, fxRate)
	} else {
		s.logger.Info("itinerary generated", "provider", provider, "days", len(it.Days))
	}

	it.Image = tc.ImageURL
	if tc.Place != nil {
		it.Coordinates = &Coordinates{Lat: tc.Place.Lat, Lon: tc.Place.Lon}
	}

	if s.store != nil && !it.IsFallback {
		if err := s.store.Save(ctx, key, it, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("itinerary cache write failed", "error", err)
		}
	}

	return it, nil
}

// ProviderNames reports the chain makeup for diagnostics.
func (s *service) ProviderNames() []string {
	return s.chain.Names()
}

// normalizeDays applies the request default and the sanity clamp: a
// missing value means a 3-day trip, an out-of-range value falls back to 7.
func normalizeDays(days int) int {
	if days == 0 {
		days = defaultDays
	}
	if days <= 0 || days >= maxDays {
		return safeDays
	}
	return days
}
