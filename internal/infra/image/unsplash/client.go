package unsplash

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

const defaultBaseURL = "https://api.unsplash.com"

// ErrNoResults signals that the search matched no photos.
var ErrNoResults = errors.New("unsplash: no results for query")

// Client fetches a representative destination photo from Unsplash.
type Client struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(accessKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(accessKey) == "" {
		return nil, errors.New("unsplash access key cannot be empty")
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		accessKey: accessKey,
		baseURL:   strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SearchPhoto returns the URL of the top landscape photo for a query.
func (c *Client) SearchPhoto(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("per_page", "1")
	params.Set("orientation", "landscape")
	params.Set("query", query)
	params.Set("client_id", c.accessKey)
	endpoint := c.baseURL + "/search/photos?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("image request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}
	if len(raw.Results) == 0 {
		return "", ErrNoResults
	}

	// "regular" balances resolution against payload size.
	return raw.Results[0].URLs.Regular, nil
}

type apiResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}
