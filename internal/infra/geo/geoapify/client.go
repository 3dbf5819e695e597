package geoapify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.geoapify.com/v1/geocode/search"

// Place is a resolved geocoding hit.
type Place struct {
	Formatted string  `json:"formatted"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// ErrNoResults signals that the service answered but matched nothing.
var ErrNoResults = errors.New("geoapify: no results for query")

// Client resolves free-text destinations against the Geoapify geocoder.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. The key is required by the service.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("geoapify api key cannot be empty")
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Geocode resolves a destination string to coordinates and a formatted name.
func (c *Client) Geocode(ctx context.Context, query string) (Place, error) {
	endpoint := fmt.Sprintf("%s?text=%s&apiKey=%s", c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Place{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Place{}, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Place{}, fmt.Errorf("read geocode response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return Place{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(raw.Features) == 0 {
		return Place{}, ErrNoResults
	}

	props := raw.Features[0].Properties
	return Place{Formatted: props.Formatted, Lat: props.Lat, Lon: props.Lon}, nil
}

type apiResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties properties `json:"properties"`
}

type properties struct {
	Formatted string  `json:"formatted"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}
