package storage

import (
	"context"
	"io"
)

// Uploader stores a photo and returns its publicly retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (publicURL string, err error)
}

// Remover deletes a previously uploaded object by the URL Upload returned.
// Callers treat failures as best-effort.
type Remover interface {
	Remove(ctx context.Context, publicURL string) error
}
