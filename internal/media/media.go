// Package media stores product images, either in S3 or on the local
// filesystem when S3 is disabled.
package media

import (
	"context"
	"io"
)

// Store defines the interface for persisting uploaded media files.
type Store interface {
	// Put writes the content under the given file name and returns the
	// public URL of the stored object.
	Put(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}
