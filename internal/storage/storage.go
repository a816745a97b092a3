package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting uploaded images. The local-disk
// implementation can be swapped for an object store without touching
// handlers.
type Storage interface {
	// Save writes the file under key and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file for key. Missing files are not an error.
	Delete(ctx context.Context, key string) error
}
