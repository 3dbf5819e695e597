package trip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rushabh16-9/travel-planner/internal/infra/geo/geoapify"
	"github.com/Rushabh16-9/travel-planner/internal/infra/weather/openmeteo"
)

func TestWeatherLine(t *testing.T) {
	require.Empty(t, TripContext{}.WeatherLine())

	tc := TripContext{Weather: &openmeteo.Snapshot{Temperature: 23.6, WeatherCode: 0}}
	require.Equal(t, "24°C, Clear sky", tc.WeatherLine())

	tc = TripContext{Weather: &openmeteo.Snapshot{Temperature: -4.5, WeatherCode: 71}}
	require.Equal(t, "-4°C, Slight snow fall", tc.WeatherLine())
}

func TestGatherSkipsCoordinateLookupsWithoutGeocode(t *testing.T) {
	weather := &stubWeather{snapshot: openmeteo.Snapshot{Temperature: 20}}
	agg := &contextAggregator{
		geocoder: &stubGeocoder{err: errors.New("service unavailable")},
		weather:  weather,
		poi:      &stubPOI{},
		images:   &stubImage{url: "https://images.example.com/x.jpg"},
		logger:   testLogger(),
	}

	tc := agg.Gather(context.Background(), "Rome")
	require.Nil(t, tc.Place)
	require.Nil(t, tc.Weather)
	require.Empty(t, tc.POIs)
	require.Equal(t, "https://images.example.com/x.jpg", tc.ImageURL)
}

func TestGatherToleratesPartialFailures(t *testing.T) {
	agg := &contextAggregator{
		geocoder: &stubGeocoder{place: geoapify.Place{Formatted: "Rome, Italy", Lat: 41.9, Lon: 12.5}},
		weather:  &stubWeather{err: errors.New("timeout")},
		poi:      &stubPOI{err: errors.New("unauthorized")},
		images:   &stubImage{err: errors.New("quota exceeded")},
		logger:   testLogger(),
	}

	tc := agg.Gather(context.Background(), "Rome")
	require.NotNil(t, tc.Place)
	require.Equal(t, "Rome, Italy", tc.Place.Formatted)
	require.Nil(t, tc.Weather)
	require.Empty(t, tc.POIs)
	require.Empty(t, tc.ImageURL)
}

func TestGatherWithNilClients(t *testing.T) {
	agg := &contextAggregator{logger: testLogger()}

	tc := agg.Gather(context.Background(), "Rome")
	require.Equal(t, TripContext{}, tc)
}
