package storage

import (
	"context"
	"io"
)

// ObjectInfo represents metadata for a stored document object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// DocumentStorage captures the minimal S3-compatible operations the
// vendor document workflow needs.
type DocumentStorage interface {
	Upload(ctx context.Context, key string, contentType string, size int64, body io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Remove(ctx context.Context, key string) error
}
