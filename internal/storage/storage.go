// Package storage holds the image-storage collaborator. An uploaded image is
// stored externally and referenced from a recipe record by the returned URL;
// upload and record creation are two independent, non-atomic calls.
package storage

import (
	"context"
	"io"
)

// Storage stores a single uploaded image and returns a stable public URL.
type Storage interface {
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
	Remove(ctx context.Context, fileRef string) error
}
