// Package blobstore persists image bytes and hands out public URLs.
// Temporary artifacts (tile crops, intermediates) live under a staging
// prefix; finalized outputs under a permanent prefix.
package blobstore

import (
	"context"
	"fmt"
)

// Store is the minimal surface the pipeline needs from object storage.
type Store interface {
	// Put writes data under key and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// URL returns the public URL for a key without writing.
	URL(key string) string
}

// StagingKey builds the staging-prefix key for a job artifact.
func StagingKey(prefix, jobID, name string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, jobID, name)
}

// PermanentKey builds the permanent-prefix key for a finalized output.
func PermanentKey(prefix, jobID, name string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, jobID, name)
}
