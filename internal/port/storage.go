package port

import (
	"context"
	"io"
	"time"
)

// PutObjectInput describes one object written to the bucket.
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
	// ContentDisposition is sent back on download, e.g. to name a PDF.
	ContentDisposition string
}

// ObjectStorage is the bucket holding the ledger document (s3 store driver)
// and archived invoice PDFs. Keys are relative to the bucket.
type ObjectStorage interface {
	Put(ctx context.Context, input PutObjectInput) error
	// Get returns domain.ErrObjectNotFound when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Ping checks that the bucket exists and is reachable.
	Ping(ctx context.Context) error
}
