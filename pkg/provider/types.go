// Package provider implements the client for the remote inference provider:
// prediction submission with completion webhooks, status fetches, and output
// downloads.
package provider

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the provider-side lifecycle state of a prediction.
type Status string

const (
	StatusStarting   Status = "starting"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
	StatusCanceled   Status = "canceled"
)

// Terminal reports whether the status will never change again.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	default:
		return false
	}
}

// Prediction is the provider's view of one inference invocation.
type Prediction struct {
	ID      string
	Version string
	Status  Status
	// Output is the first output URL for terminal successful predictions.
	Output string
	Error  string
	// CreatedAt is the provider-side submission time; zero when the
	// provider omitted it.
	CreatedAt time.Time
}

// UnmarshalJSON normalizes the provider's output field, which may be a
// single URL or a list of URLs depending on the model.
func (p *Prediction) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string          `json:"id"`
		Version   string          `json:"version"`
		Status    string          `json:"status"`
		Output    json.RawMessage `json:"output"`
		Error     string          `json:"error"`
		CreatedAt string          `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Version = raw.Version
	p.Status = Status(raw.Status)
	p.Error = raw.Error
	p.Output = ""
	p.CreatedAt = time.Time{}
	if raw.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw.CreatedAt); err == nil {
			p.CreatedAt = t
		}
	}

	if len(raw.Output) == 0 || string(raw.Output) == "null" {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw.Output, &single); err == nil {
		p.Output = single
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw.Output, &many); err == nil {
		if len(many) > 0 {
			p.Output = many[0]
		}
		return nil
	}
	return fmt.Errorf("unrecognized prediction output %s", string(raw.Output))
}

// SubmitRequest describes one prediction submission.
type SubmitRequest struct {
	Model      string
	Version    string
	Input      map[string]any
	WebhookURL string
}

// Markers the provider emits when a model runs out of GPU memory. Memory
// exhaustion is non-retryable: a retry on the same input will fail the same
// way.
var oomMarkers = []string{
	"cuda out of memory",
	"out of memory",
	"oom",
	"memory limit exceeded",
}

// IsOutOfMemory classifies a provider error message as GPU memory
// exhaustion.
func IsOutOfMemory(message string) bool {
	m := strings.ToLower(message)
	for _, marker := range oomMarkers {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}
