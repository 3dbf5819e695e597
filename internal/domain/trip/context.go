package trip

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Rushabh16-9/travel-planner/internal/infra/geo/geoapify"
	"github.com/Rushabh16-9/travel-planner/internal/infra/poi/amadeus"
	"github.com/Rushabh16-9/travel-planner/internal/infra/weather/openmeteo"
)

// Geocoder resolves a destination string to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (geoapify.Place, error)
}

// WeatherClient fetches current conditions at coordinates.
type WeatherClient interface {
	Current(ctx context.Context, lat, lon float64) (openmeteo.Snapshot, error)
}

// POIClient lists attractions near coordinates.
type POIClient interface {
	Nearby(ctx context.Context, lat, lon float64, radiusKm, limit int) ([]amadeus.PointOfInterest, error)
}

// ImageClient finds a representative destination photo.
type ImageClient interface {
	SearchPhoto(ctx context.Context, query string) (string, error)
}

// TripContext is the aggregated third-party context for one request.
// Every field is optional; absence means the corresponding lookup failed
// or was not configured.
type TripContext struct {
	Place    *geoapify.Place
	Weather  *openmeteo.Snapshot
	POIs     []amadeus.PointOfInterest
	ImageURL string
}

// WeatherLine renders the prompt's weather context, or "" without data.
func (tc TripContext) WeatherLine() string {
	if tc.Weather == nil {
		return ""
	}
	return fmt.Sprintf("%.0f°C, %s", tc.Weather.Temperature, tc.Weather.Label())
}

// contextAggregator gathers geocode, weather, image, and POI data with
// per-lookup fault tolerance. It never returns an error: failed lookups
// become nil placeholders. Any of the clients may be nil when the related
// service is not configured.
type contextAggregator struct {
	geocoder Geocoder
	weather  WeatherClient
	poi      POIClient
	images   ImageClient
	logger   *slog.Logger
}

// Gather runs the lookups. Geocoding goes first; without coordinates the
// weather and POI lookups are skipped entirely and only the image search
// is attempted. With coordinates, the three remaining lookups fan out
// concurrently and join regardless of individual failures.
func (a *contextAggregator) Gather(ctx context.Context, destination string) TripContext {
	var tc TripContext

	if a.geocoder != nil {
		place, err := a.geocoder.Geocode(ctx, destination)
		if err != nil {
			a.logger.Warn("geocoding failed, proceeding without location data", "destination", destination, "error", err)
		} else {
			tc.Place = &place
		}
	}

	if tc.Place == nil {
		tc.ImageURL = a.fetchImage(ctx, destination)
		return tc
	}

	var wg sync.WaitGroup

	if a.weather != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, err := a.weather.Current(ctx, tc.Place.Lat, tc.Place.Lon)
			if err != nil {
				a.logger.Warn("weather lookup failed", "error", err)
				return
			}
			tc.Weather = &snapshot
		}()
	}

	if a.poi != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pois, err := a.poi.Nearby(ctx, tc.Place.Lat, tc.Place.Lon, 5, 5)
			if err != nil {
				a.logger.Warn("poi lookup failed", "error", err)
				return
			}
			tc.POIs = pois
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		tc.ImageURL = a.fetchImage(ctx, destination)
	}()

	wg.Wait()
	return tc
}

func (a *contextAggregator) fetchImage(ctx context.Context, destination string) string {
	if a.images == nil {
		return ""
	}
	url, err := a.images.SearchPhoto(ctx, destination)
	if err != nil {
		a.logger.Warn("image lookup failed", "error", err)
		return ""
	}
	return url
}
