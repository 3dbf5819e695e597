package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Snapshot is the current-conditions slice of a forecast response.
type Snapshot struct {
	Temperature float64
	WeatherCode int
}

// Label translates the snapshot's WMO code into a human readable condition.
func (s Snapshot) Label() string {
	return CodeLabel(s.WeatherCode)
}

// Client fetches current weather from Open-Meteo. No API key is required.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current retrieves the present conditions at the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Snapshot, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code")
	params.Set("current_weather", "true")
	params.Set("timezone", "auto")
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Snapshot{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read weather response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	return Snapshot{
		Temperature: raw.CurrentWeather.Temperature,
		WeatherCode: raw.CurrentWeather.WeatherCode,
	}, nil
}

type apiResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}
