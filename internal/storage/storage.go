package storage

import (
	"context"

	"github.com/andresuchdata/autoorder/backend/internal/config"
)

// ObjectStorage captures the S3-compatible operations used for order exports.
type ObjectStorage interface {
	UploadObject(ctx context.Context, key string, data []byte, contentType string) error
}

// New returns the configured storage, or a noop one when storage is disabled.
func New(cfg config.StorageConfig) (ObjectStorage, error) {
	if !cfg.Enabled {
		return NoopStorage{}, nil
	}
	return NewMinioClient(cfg)
}

// NoopStorage drops every upload.
type NoopStorage struct{}

func (NoopStorage) UploadObject(ctx context.Context, key string, data []byte, contentType string) error {
	return nil
}
