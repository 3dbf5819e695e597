package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newAmadeusTestServer(t *testing.T, poisHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":1799}`))
	})
	mux.HandleFunc("/v1/reference-data/locations/pois", poisHandler)
	return httptest.NewServer(mux)
}

func TestNearby(t *testing.T) {
	server := newAmadeusTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		require.Equal(t, "41.9000", q.Get("latitude"))
		require.Equal(t, "12.5000", q.Get("longitude"))
		require.Equal(t, "5", q.Get("radius"))
		require.Equal(t, "3", q.Get("page[limit]"))
		w.Write([]byte(`{"data":[{"name":"Colosseum","category":"SIGHTS","tags":["sightseeing","historic"]},{"name":"Pantheon","category":"SIGHTS"}]}`))
	})
	defer server.Close()

	client, err := NewClient("id", "secret", server.URL)
	require.NoError(t, err)

	pois, err := client.Nearby(context.Background(), 41.9, 12.5, 5, 3)
	require.NoError(t, err)
	require.Len(t, pois, 2)
	require.Equal(t, "Colosseum", pois[0].Name)
	require.Equal(t, []string{"sightseeing", "historic"}, pois[0].Tags)
}

func TestNearbyDefaultsRadiusAndLimit(t *testing.T) {
	server := newAmadeusTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "5", q.Get("radius"))
		require.Equal(t, "5", q.Get("page[limit]"))
		w.Write([]byte(`{"data":[]}`))
	})
	defer server.Close()

	client, err := NewClient("id", "secret", server.URL)
	require.NoError(t, err)

	pois, err := client.Nearby(context.Background(), 41.9, 12.5, 0, 0)
	require.NoError(t, err)
	require.Empty(t, pois)
}

func TestNearbyServerError(t *testing.T) {
	server := newAmadeusTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	defer server.Close()

	client, err := NewClient("id", "secret", server.URL)
	require.NoError(t, err)

	_, err = client.Nearby(context.Background(), 41.9, 12.5, 5, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("", "secret", "")
	require.Error(t, err)

	_, err = NewClient("id", "  ", "")
	require.Error(t, err)
}
