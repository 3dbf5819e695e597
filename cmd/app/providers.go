package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/Rushabh16-9/travel-planner/internal/domain/advisory"
	"github.com/Rushabh16-9/travel-planner/internal/domain/trip"
	"github.com/Rushabh16-9/travel-planner/internal/infra/config"
	"github.com/Rushabh16-9/travel-planner/internal/infra/geo/geoapify"
	"github.com/Rushabh16-9/travel-planner/internal/infra/image/unsplash"
	"github.com/Rushabh16-9/travel-planner/internal/infra/llm/gemini"
	"github.com/Rushabh16-9/travel-planner/internal/infra/llm/ollama"
	"github.com/Rushabh16-9/travel-planner/internal/infra/llm/openai"
	"github.com/Rushabh16-9/travel-planner/internal/infra/poi/amadeus"
	"github.com/Rushabh16-9/travel-planner/internal/infra/tripstore"
	"github.com/Rushabh16-9/travel-planner/internal/infra/weather/openmeteo"
)

func provideTripConfig(cfg *config.Config) trip.Config {
	return trip.Config{CacheTTL: cfg.Cache.TTL}
}

func provideAdvisoryConfig(cfg *config.Config) advisory.Config {
	return advisory.Config{
		Model:       cfg.Providers.Groq.Model,
		Temperature: cfg.Providers.Groq.Temperature,
	}
}

// provideGeocoder returns nil when no geocoding key is configured; the
// aggregator degrades to image-only context in that case.
func provideGeocoder(cfg *config.Config, logger *slog.Logger) trip.Geocoder {
	if strings.TrimSpace(cfg.Geo.APIKey) == "" {
		logger.Info("geoapify key not set, geocoding disabled")
		return nil
	}
	client, err := geoapify.NewClient(cfg.Geo.APIKey, cfg.Geo.APIBaseURL)
	if err != nil {
		logger.Error("invalid geoapify configuration, geocoding disabled", "error", err)
		return nil
	}
	return client
}

// provideWeatherClient is always available since Open-Meteo needs no key.
func provideWeatherClient(cfg *config.Config) trip.WeatherClient {
	return openmeteo.NewClient(cfg.Weather.APIBaseURL)
}

func providePOIClient(cfg *config.Config, logger *slog.Logger) trip.POIClient {
	if strings.TrimSpace(cfg.POI.ClientID) == "" || strings.TrimSpace(cfg.POI.ClientSecret) == "" {
		logger.Info("amadeus credentials not set, poi lookup disabled")
		return nil
	}
	client, err := amadeus.NewClient(cfg.POI.ClientID, cfg.POI.ClientSecret, cfg.POI.APIBaseURL)
	if err != nil {
		logger.Error("invalid amadeus configuration, poi lookup disabled", "error", err)
		return nil
	}
	return client
}

func provideImageClient(cfg *config.Config, logger *slog.Logger) trip.ImageClient {
	if strings.TrimSpace(cfg.Image.AccessKey) == "" {
		logger.Info("unsplash key not set, image lookup disabled")
		return nil
	}
	client, err := unsplash.NewClient(cfg.Image.AccessKey, cfg.Image.APIBaseURL)
	if err != nil {
		logger.Error("invalid unsplash configuration, image lookup disabled", "error", err)
		return nil
	}
	return client
}

// provideChain assembles the provider priority order: Groq, then Ollama,
// then Moonshot, then Gemini. Unconfigured providers simply never join.
func provideChain(cfg *config.Config, logger *slog.Logger) *trip.Chain {
	var providers []trip.Provider

	if key := strings.TrimSpace(cfg.Providers.Groq.APIKey); key != "" {
		client, err := openai.NewClient(key, cfg.Providers.Groq.BaseURL)
		if err != nil {
			logger.Error("groq client init failed", "error", err)
		} else {
			providers = append(providers, trip.NewOpenAICompatProvider(
				"groq", client, cfg.Providers.Groq.Model,
				cfg.Providers.Groq.Temperature, cfg.Providers.Groq.MaxTokens,
			))
		}
	}

	if model := strings.TrimSpace(cfg.Providers.Ollama.Model); model != "" {
		client := ollama.NewClient(cfg.Providers.Ollama.BaseURL)
		providers = append(providers, trip.NewOllamaProvider(client, model, cfg.Providers.Ollama.Temperature))
	}

	if key := strings.TrimSpace(cfg.Providers.Moonshot.APIKey); key != "" {
		client, err := openai.NewClient(key, cfg.Providers.Moonshot.BaseURL)
		if err != nil {
			logger.Error("moonshot client init failed", "error", err)
		} else {
			providers = append(providers, trip.NewOpenAICompatProvider(
				"moonshot", client, cfg.Providers.Moonshot.Model,
				cfg.Providers.Moonshot.Temperature, cfg.Providers.Moonshot.MaxTokens,
			))
		}
	}

	if key := strings.TrimSpace(cfg.Providers.Gemini.APIKey); key != "" {
		client, err := gemini.NewClient(context.Background(), key, cfg.Providers.Gemini.Model, cfg.Providers.Gemini.Temperature)
		if err != nil {
			logger.Error("gemini client init failed", "error", err)
		} else {
			providers = append(providers, trip.NewGeminiProvider(client))
		}
	}

	if len(providers) == 0 {
		logger.Warn("no llm providers configured, every itinerary will use the static fallback")
	}
	return trip.NewChain(logger, providers...)
}

func provideTripStore(cfg *config.Config, logger *slog.Logger) trip.Store {
	if cfg.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return tripstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return tripstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("itinerary valkey cache enabled", "addr", cfg.Cache.Addr)
			return tripstore.NewValkeyStore(client, "trip")
		}
	}
	return tripstore.NewMemoryStore()
}

// provideAdvisoryChat reuses the fast provider for advisories; nil when
// unconfigured, which pins every advisory to the static seasonal table.
func provideAdvisoryChat(cfg *config.Config, logger *slog.Logger) advisory.ChatClient {
	key := strings.TrimSpace(cfg.Providers.Groq.APIKey)
	if key == "" {
		logger.Info("groq key not set, advisories use the static seasonal table")
		return nil
	}
	client, err := openai.NewClient(key, cfg.Providers.Groq.BaseURL)
	if err != nil {
		logger.Error("groq client init failed for advisories", "error", err)
		return nil
	}
	return client
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
