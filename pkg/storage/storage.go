package storage

import (
	"context"
	"io"
)

// BlobStore is the binary object storage used for resume files. Upload
// returns a durable, publicly resolvable URL for the stored object or an
// error; there is no partial success.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
