package storage

import (
	"context"
	"io"
)

// Storage is the blob-store boundary: persist a file, hand back the URL
// clients can fetch it from. Validation of size and content type happens
// before a driver is invoked.
type Storage interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
