package amadeus

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

	"golang.org/x/oauth2/clientcredentials"
)

const defaultBaseURL = "https://test.api.amadeus.com"

// PointOfInterest names an attraction near the requested coordinates.
// Amadeus returns richer records; only the fields the planner consumes
// are decoded.
type PointOfInterest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Client looks up points of interest through the Amadeus self-service API.
// Bearer tokens come from the client-credentials grant and are refreshed
// transparently by the oauth2 transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a POI client from a client-credentials pair.
func NewClient(clientID, clientSecret, baseURL string) (*Client, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return nil, errors.New("amadeus client credentials cannot be empty")
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	base = strings.TrimRight(base, "/")

	creds := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     base + "/v1/security/oauth2/token",
	}
	httpClient := creds.Client(context.Background())
	httpClient.Timeout = 15 * time.Second

	return &Client{baseURL: base, httpClient: httpClient}, nil
}

// Nearby returns up to limit attractions within radiusKm of the coordinates.
func (c *Client) Nearby(ctx context.Context, lat, lon float64, radiusKm, limit int) ([]PointOfInterest, error) {
	if radiusKm <= 0 {
		radiusKm = 5
	}
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("radius", fmt.Sprintf("%d", radiusKm))
	params.Set("page[limit]", fmt.Sprintf("%d", limit))
	endpoint := c.baseURL + "/v1/reference-data/locations/pois?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build poi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("poi request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read poi response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode poi response: %w", err)
	}

	return raw.Data, nil
}

type apiResponse struct {
	Data []PointOfInterest `json:"data"`
}
