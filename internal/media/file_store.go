package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileStore implements Store on the local filesystem, for development and
// deployments without S3.
type fileStore struct {
	dir     string
	baseURL string
	logger  zerolog.Logger
}

// NewFileStore creates a new filesystem-backed media store rooted at dir.
func NewFileStore(dir, baseURL string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", dir, err)
	}

	return &fileStore{
		dir:     dir,
		baseURL: baseURL,
		logger:  logger.With().Str("component", "file-media-store").Logger(),
	}, nil
}

// Put writes the content under the media directory and returns its URL.
func (s *fileStore) Put(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	// name comes from the service layer (uuid + extension), never raw user
	// input, but strip any path components regardless.
	name = filepath.Base(name)
	target := filepath.Join(s.dir, name)

	file, err := os.Create(target)
	if err != nil {
		s.logger.Error().Err(err).Str("file", target).Msg("failed to create media file")
		return "", fmt.Errorf("failed to create media file %s: %w", target, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		s.logger.Error().Err(err).Str("file", target).Msg("failed to write media file")
		return "", fmt.Errorf("failed to write media file %s: %w", target, err)
	}

	s.logger.Info().Str("file", target).Msg("media file stored")

	return s.baseURL + "/" + name, nil
}
