package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pixelrelay/upscaled/pkg/config"
)

// ErrStageTimeout marks a prediction that stayed non-terminal past the
// per-stage processing bound. The reconciler raises it as the failure
// reason when it abandons a stalled stage.
var ErrStageTimeout = errors.New("prediction did not complete within the stage timeout")

// Client is the surface the orchestrator, reconciler, and stitcher need.
type Client interface {
	// Submit starts a prediction; the provider will POST a completion
	// webhook to req.WebhookURL.
	Submit(ctx context.Context, req SubmitRequest) (*Prediction, error)
	// Get fetches current prediction state.
	Get(ctx context.Context, id string) (*Prediction, error)
	// Download fetches output bytes from a provider-served URL.
	Download(ctx context.Context, url string) ([]byte, error)
}

// HTTPClient talks to a Replicate-style predictions API over HTTP/JSON.
type HTTPClient struct {
	httpClient          *http.Client
	baseURL             string
	token               string
	maxRateLimitRetries int
	logger              *slog.Logger
}

// NewHTTPClient creates a provider client from configuration.
func NewHTTPClient(cfg config.ProviderConfig, launch config.LaunchConfig) *HTTPClient {
	return &HTTPClient{
		httpClient:          &http.Client{Timeout: 60 * time.Second},
		baseURL:             cfg.BaseURL,
		token:               cfg.Token,
		maxRateLimitRetries: launch.MaxRateLimitRetries,
		logger:              slog.Default(),
	}
}

type submitBody struct {
	Version             string         `json:"version"`
	Input               map[string]any `json:"input"`
	Webhook             string         `json:"webhook,omitempty"`
	WebhookEventsFilter []string       `json:"webhook_events_filter,omitempty"`
}

// Submit starts a prediction. HTTP 429 responses are retried up to the
// configured bound, honoring the server-advised Retry-After; transport
// errors back off linearly.
func (c *HTTPClient) Submit(ctx context.Context, req SubmitRequest) (*Prediction, error) {
	body := submitBody{
		Version: req.Version,
		Input:   req.Input,
	}
	if req.WebhookURL != "" {
		body.Webhook = req.WebhookURL
		body.WebhookEventsFilter = []string{"completed"}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal submit body: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRateLimitRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay(attempt, lastErr)):
			}
		}

		pred, retryable, err := c.submitOnce(ctx, payload)
		if err == nil {
			return pred, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.logger.Warn("Prediction submission retry",
			"model", req.Model, "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("submit prediction for %s: %w", req.Model, lastErr)
}

// rateLimitError carries the server-advised wait from a 429 response.
type rateLimitError struct {
	retryAfter time.Duration
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.retryAfter)
}

func (c *HTTPClient) retryDelay(attempt int, lastErr error) time.Duration {
	var rle *rateLimitError
	if errors.As(lastErr, &rle) {
		// Honor the server-advised wait, including an explicit zero.
		return rle.retryAfter
	}
	return time.Duration(attempt) * 500 * time.Millisecond
}

func (c *HTTPClient) submitOnce(ctx context.Context, payload []byte) (*Prediction, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/predictions", bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Transport failure: retryable with backoff.
		return nil, true, fmt.Errorf("post prediction: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, &rateLimitError{retryAfter: parseRetryAfter(resp)}
	case resp.StatusCode >= 300:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, false, fmt.Errorf("provider returned HTTP %d: %s", resp.StatusCode, data)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, false, fmt.Errorf("decode prediction: %w", err)
	}
	return &pred, false, nil
}

// Get fetches the current state of a prediction.
func (c *HTTPClient) Get(ctx context.Context, id string) (*Prediction, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/predictions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get prediction %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned HTTP %d for prediction %s", resp.StatusCode, id)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("decode prediction %s: %w", id, err)
	}
	return &pred, nil
}

// Download fetches bytes from a provider-served output URL.
func (c *HTTPClient) Download(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}

func parseRetryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
