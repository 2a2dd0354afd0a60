// Package report persists janitor pass reports to object storage.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/janitor/internal/janitor"
)

const contentType = "application/json"

// ObjectWriter stores one object in a bucket.
type ObjectWriter interface {
	PutObject(ctx context.Context, bucket, key, contentType string, data []byte) error
}

// Uploader writes pass reports as JSON objects.
type Uploader struct {
	writer ObjectWriter
	bucket string
	prefix string
	log    logr.Logger
}

// NewUploader returns an Uploader writing to bucket under prefix.
func NewUploader(writer ObjectWriter, bucket, prefix string, log logr.Logger) *Uploader {
	return &Uploader{writer: writer, bucket: bucket, prefix: prefix, log: log}
}

// Key returns the object key of a report started at startedAt.
func Key(prefix string, startedAt time.Time) string {
	name := startedAt.UTC().Format(time.RFC3339) + ".json"
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Upload stores the report and returns its key. Failures are returned to the
// caller, which decides whether they matter.
func (u *Uploader) Upload(ctx context.Context, r *janitor.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := Key(u.prefix, r.StartedAt)
	if err := u.writer.PutObject(ctx, u.bucket, key, contentType, data); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	u.log.Info("[Report] Uploaded pass report", "bucket", u.bucket, "key", key)
	return key, nil
}
