// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates every tunable of the service.
type Config struct {
	HTTP       HTTPConfig
	Provider   ProviderConfig
	Blob       BlobConfig
	Launch     LaunchConfig
	Reconciler ReconcilerConfig
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Port string
	// CallbackBaseURL is the externally reachable base URL the provider
	// posts completion webhooks to, e.g. "https://api.example.com".
	CallbackBaseURL string
}

// ProviderConfig configures the remote inference provider client.
type ProviderConfig struct {
	BaseURL string
	Token   string
}

// BlobConfig configures the S3 blob store.
type BlobConfig struct {
	Bucket          string
	Region          string
	PublicBaseURL   string
	StagingPrefix   string
	PermanentPrefix string
}

// LaunchConfig bounds prediction fan-out.
type LaunchConfig struct {
	// Interval staggers successive submissions to respect provider burst
	// limits.
	Interval time.Duration
	// MaxRateLimitRetries bounds retries of a single submission on HTTP 429.
	MaxRateLimitRetries int
}

// ReconcilerConfig configures the silent-job repair loop.
type ReconcilerConfig struct {
	Interval time.Duration
	// SilentAfter is how long a processing job may go without a callback
	// before the reconciler polls the provider for it.
	SilentAfter time.Duration
	// StageTimeout is how long a single prediction may stay non-terminal
	// before the reconciler declares its stage failed. Zero disables the
	// bound.
	StageTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Port:            getEnvOrDefault("HTTP_PORT", "8080"),
			CallbackBaseURL: os.Getenv("CALLBACK_BASE_URL"),
		},
		Provider: ProviderConfig{
			BaseURL: getEnvOrDefault("PROVIDER_BASE_URL", "https://api.replicate.com/v1"),
			Token:   os.Getenv("PROVIDER_API_TOKEN"),
		},
		Blob: BlobConfig{
			Bucket:          getEnvOrDefault("BLOB_BUCKET", "upscaled-images"),
			Region:          getEnvOrDefault("BLOB_REGION", "us-east-1"),
			PublicBaseURL:   os.Getenv("BLOB_PUBLIC_BASE_URL"),
			StagingPrefix:   getEnvOrDefault("BLOB_STAGING_PREFIX", "staging"),
			PermanentPrefix: getEnvOrDefault("BLOB_PERMANENT_PREFIX", "outputs"),
		},
		Launch: LaunchConfig{
			Interval:            getDurationOrDefault("LAUNCH_INTERVAL", 200*time.Millisecond),
			MaxRateLimitRetries: getIntOrDefault("LAUNCH_MAX_RATE_LIMIT_RETRIES", 5),
		},
		Reconciler: ReconcilerConfig{
			Interval:     getDurationOrDefault("RECONCILER_INTERVAL", 10*time.Second),
			SilentAfter:  getDurationOrDefault("RECONCILER_SILENT_AFTER", 10*time.Second),
			StageTimeout: getDurationOrDefault("RECONCILER_STAGE_TIMEOUT", 4*time.Minute),
		},
	}

	if cfg.Provider.Token == "" {
		return nil, fmt.Errorf("PROVIDER_API_TOKEN is required")
	}
	if cfg.HTTP.CallbackBaseURL == "" {
		return nil, fmt.Errorf("CALLBACK_BASE_URL is required")
	}
	if cfg.Blob.PublicBaseURL == "" {
		cfg.Blob.PublicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Blob.Bucket, cfg.Blob.Region)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
