package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/pkg/config"
)

func newTestClient(baseURL string) *HTTPClient {
	return NewHTTPClient(
		config.ProviderConfig{
			BaseURL: baseURL,
			Token:   "test-token",
		},
		config.LaunchConfig{MaxRateLimitRetries: 5},
	)
}

func TestSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predictions", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "v1-hash", body["version"])
		assert.Equal(t, "https://api.example.com/callback", body["webhook"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pred-1","status":"starting"}`))
	}))
	defer srv.Close()

	pred, err := newTestClient(srv.URL).Submit(context.Background(), SubmitRequest{
		Model:      "nightmareai/real-esrgan",
		Version:    "v1-hash",
		Input:      map[string]any{"scale": 4},
		WebhookURL: "https://api.example.com/callback",
	})
	require.NoError(t, err)
	assert.Equal(t, "pred-1", pred.ID)
	assert.Equal(t, StatusStarting, pred.Status)
}

func TestSubmitRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"id":"pred-2","status":"starting"}`))
	}))
	defer srv.Close()

	pred, err := newTestClient(srv.URL).Submit(context.Background(), SubmitRequest{Version: "v"})
	require.NoError(t, err)
	assert.Equal(t, "pred-2", pred.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSubmitRateLimitExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), SubmitRequest{Version: "v"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSubmitDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad version", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Submit(context.Background(), SubmitRequest{Version: "nope"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predictions/pred-3", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pred-3","status":"succeeded","output":"https://cdn.example.com/out.png"}`))
	}))
	defer srv.Close()

	pred, err := newTestClient(srv.URL).Get(context.Background(), "pred-3")
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, pred.Status)
	assert.Equal(t, "https://cdn.example.com/out.png", pred.Output)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	data, err := newTestClient(srv.URL).Download(context.Background(), srv.URL+"/out.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestPredictionUnmarshal(t *testing.T) {
	var pred Prediction
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"a","status":"succeeded","output":"https://x/y.png"}`), &pred))
	assert.Equal(t, "https://x/y.png", pred.Output)

	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"b","status":"succeeded","output":["https://x/1.png","https://x/2.png"]}`), &pred))
	assert.Equal(t, "https://x/1.png", pred.Output)

	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"c","status":"failed","error":"CUDA out of memory","output":null}`), &pred))
	assert.Empty(t, pred.Output)
	assert.Equal(t, "CUDA out of memory", pred.Error)
	assert.True(t, pred.CreatedAt.IsZero())

	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"d","status":"processing","created_at":"2026-08-24T10:15:00.5Z"}`), &pred))
	assert.Equal(t, time.Date(2026, 8, 24, 10, 15, 0, 500000000, time.UTC), pred.CreatedAt.UTC())
}

func TestIsOutOfMemory(t *testing.T) {
	assert.True(t, IsOutOfMemory("CUDA out of memory. Tried to allocate 2.1 GiB"))
	assert.True(t, IsOutOfMemory("worker killed: OOM"))
	assert.False(t, IsOutOfMemory("connection reset by peer"))
	assert.False(t, IsOutOfMemory(""))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusSucceeded.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusCanceled.Terminal())
	assert.False(t, StatusStarting.Terminal())
	assert.False(t, StatusProcessing.Terminal())
}
