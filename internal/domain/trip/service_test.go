package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rushabh16-9/travel-planner/internal/infra/geo/geoapify"
	"github.com/Rushabh16-9/travel-planner/internal/infra/poi/amadeus"
	"github.com/Rushabh16-9/travel-planner/internal/infra/weather/openmeteo"
	apperrors "github.com/Rushabh16-9/travel-planner/pkg/errors"
)

type stubGeocoder struct {
	place geoapify.Place
	err   error
}

func (g *stubGeocoder) Geocode(ctx context.Context, query string) (geoapify.Place, error) {
	return g.place, g.err
}

type stubWeather struct {
	snapshot openmeteo.Snapshot
	err      error
}

func (w *stubWeather) Current(ctx context.Context, lat, lon float64) (openmeteo.Snapshot, error) {
	return w.snapshot, w.err
}

type stubPOI struct {
	pois []amadeus.PointOfInterest
	err  error
}

func (p *stubPOI) Nearby(ctx context.Context, lat, lon float64, radiusKm, limit int) ([]amadeus.PointOfInterest, error) {
	return p.pois, p.err
}

type stubImage struct {
	url string
	err error
}

func (i *stubImage) SearchPhoto(ctx context.Context, query string) (string, error) {
	return i.url, i.err
}

type stubStore struct {
	cached *Itinerary
	saved  map[string]Itinerary
	getErr error
}

func (s *stubStore) Get(ctx context.Context, key string) (Itinerary, bool, error) {
	if s.getErr != nil {
		return Itinerary{}, false, s.getErr
	}
	if s.cached != nil {
		return *s.cached, true, nil
	}
	return Itinerary{}, false, nil
}

func (s *stubStore) Save(ctx context.Context, key string, it Itinerary, ttl time.Duration) error {
	if s.saved == nil {
		s.saved = map[string]Itinerary{}
	}
	s.saved[key] = it
	return nil
}

func newTestService(chain *Chain, store Store) Service {
	return NewService(
		Config{CacheTTL: time.Hour},
		&stubGeocoder{place: geoapify.Place{Formatted: "Rome, Italy", Lat: 41.9, Lon: 12.5}},
		&stubWeather{snapshot: openmeteo.Snapshot{Temperature: 24, WeatherCode: 0}},
		&stubPOI{pois: []amadeus.PointOfInterest{{Name: "Colosseum"}, {Name: "Pantheon"}}},
		&stubImage{url: "https://images.example.com/rome.jpg"},
		chain,
		store,
		testLogger(),
	)
}

func TestServicePlanSuccess(t *testing.T) {
	provider := &stubProvider{name: "groq", text: validItineraryJSON}
	store := &stubStore{}
	svc := newTestService(NewChain(testLogger(), provider), store)

	it, err := svc.Plan(context.Background(), Request{
		Destination: "Rome",
		Days:        2,
		Budget:      "USD 3000",
		Guests:      2,
	})
	require.NoError(t, err)
	require.False(t, it.IsFallback)
	require.Equal(t, "Rome, Italy", it.Destination)
	require.Equal(t, 2, it.Duration)
	require.Equal(t, "https://images.example.com/rome.jpg", it.Image)
	require.NotNil(t, it.Coordinates)
	require.Equal(t, 41.9, it.Coordinates.Lat)
	require.Equal(t, 12.5, it.Coordinates.Lon)
	require.Equal(t, 1, provider.calls)
	require.Len(t, store.saved, 1)
}

func TestServicePlanFallsBackWhenChainExhausted(t *testing.T) {
	provider := &stubProvider{name: "groq", err: errors.New("boom")}
	store := &stubStore{}
	svc := newTestService(NewChain(testLogger(), provider), store)

	it, err := svc.Plan(context.Background(), Request{
		Destination: "Rome",
		Days:        4,
		Budget:      "USD 3000",
		Guests:      2,
	})
	require.NoError(t, err)
	require.True(t, it.IsFallback)
	require.Equal(t, "Rome, Italy", it.Destination)
	require.Equal(t, 4, it.Duration)
	require.Len(t, it.Days, 4)
	require.Equal(t, 3000.0, it.TotalCost)
	require.Equal(t, "USD", it.Currency)
	// Context enrichment still applies to fallback plans.
	require.Equal(t, "https://images.example.com/rome.jpg", it.Image)
	require.NotNil(t, it.Coordinates)
	// Fallback plans are never cached.
	require.Empty(t, store.saved)
}

func TestServicePlanWithEmptyChain(t *testing.T) {
	svc := newTestService(NewChain(testLogger()), nil)

	it, err := svc.Plan(context.Background(), Request{Destination: "Rome"})
	require.NoError(t, err)
	require.True(t, it.IsFallback)
	require.Equal(t, defaultDays, it.Duration)
	require.True(t, it.Valid())
}

func TestServicePlanRequiresDestination(t *testing.T) {
	svc := newTestService(NewChain(testLogger()), nil)

	_, err := svc.Plan(context.Background(), Request{Destination: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServicePlanServesCachedItinerary(t *testing.T) {
	cached := Itinerary{Destination: "Rome, Italy", Duration: 2, Days: []Day{{Day: 1}}}
	provider := &stubProvider{name: "groq", text: validItineraryJSON}
	svc := newTestService(NewChain(testLogger(), provider), &stubStore{cached: &cached})

	it, err := svc.Plan(context.Background(), Request{Destination: "Rome", Days: 2})
	require.NoError(t, err)
	require.Equal(t, cached, it)
	require.Zero(t, provider.calls)
}

func TestServicePlanToleratesCacheReadFailure(t *testing.T) {
	provider := &stubProvider{name: "groq", text: validItineraryJSON}
	svc := newTestService(NewChain(testLogger(), provider), &stubStore{getErr: errors.New("connection refused")})

	it, err := svc.Plan(context.Background(), Request{Destination: "Rome", Days: 2})
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
	require.False(t, it.IsFallback)
}

func TestServicePlanWithoutLookupClients(t *testing.T) {
	svc := NewService(Config{}, nil, nil, nil, nil, NewChain(testLogger()), nil, testLogger())

	it, err := svc.Plan(context.Background(), Request{Destination: "Tbilisi", Days: 2})
	require.NoError(t, err)
	require.True(t, it.IsFallback)
	require.Equal(t, "Tbilisi", it.Destination)
	require.Empty(t, it.Image)
	require.Nil(t, it.Coordinates)
}

func TestServiceProviderNames(t *testing.T) {
	chain := NewChain(testLogger(), &stubProvider{name: "groq"}, &stubProvider{name: "gemini"})
	svc := newTestService(chain, nil)
	require.Equal(t, []string{"groq", "gemini"}, svc.ProviderNames())
}

func TestNormalizeDays(t *testing.T) {
	require.Equal(t, defaultDays, normalizeDays(0))
	require.Equal(t, safeDays, normalizeDays(-1))
	require.Equal(t, safeDays, normalizeDays(365))
	require.Equal(t, safeDays, normalizeDays(1000))
	require.Equal(t, 1, normalizeDays(1))
	require.Equal(t, 12, normalizeDays(12))
	require.Equal(t, 364, normalizeDays(364))
}
