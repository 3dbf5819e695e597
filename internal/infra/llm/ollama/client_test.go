package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatAccumulatesStream(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"message":{"content":"{\"duration\""},"done":false}` + "\n"))
		w.Write([]byte(`{"message":{"content":": 3}"},"done":false}` + "\n"))
		w.Write([]byte(`{"message":{"content":""},"done":true}` + "\n"))
	}))
	defer server.Close()

	content, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{
		Model:    "llama3.2",
		Messages: []Message{{Role: "user", Content: "plan"}},
	})
	require.NoError(t, err)
	require.Equal(t, `{"duration": 3}`, content)
	// Streaming is forced regardless of what the caller set.
	require.True(t, gotReq.Stream)
	require.Equal(t, "llama3.2", gotReq.Model)
}

func TestChatRejectsMalformedFrame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"content":"ok"},"done":false}` + "\n"))
		w.Write([]byte("not json\n"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{Model: "llama3.2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode ollama stream frame")
}

func TestChatSurfacesStreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"content":""},"error":"model not found","done":true}` + "\n"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{Model: "missing"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "model not found")
}

func TestChatRejectsEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"content":""},"done":true}` + "\n"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{Model: "llama3.2"})
	require.Error(t, err)
}

func TestChatUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{Model: "llama3.2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unauthorized")
}

func TestChatNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{Model: "llama3.2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=503")
}

func TestChatIgnoresBlankLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n"))
		w.Write([]byte(`{"message":{"content":"hello"},"done":true}` + "\n"))
	}))
	defer server.Close()

	content, err := NewClient(server.URL).Chat(context.Background(), ChatRequest{Model: "llama3.2"})
	require.NoError(t, err)
	require.Equal(t, "hello", content)
}
