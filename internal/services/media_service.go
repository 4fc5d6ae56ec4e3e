package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"aeromart/internal/apperrors"
	"aeromart/internal/db/repositories"
	"aeromart/internal/metrics"
)

const maxUploadBytes = 200 << 20

// mediaStore is the slice of the media repository the service consumes.
type mediaStore interface {
	Upload(ctx context.Context, src io.Reader, filename, contentType string) (string, error)
	Open(ctx context.Context, id string) (*repositories.StoredFile, error)
	Delete(ctx context.Context, id string) error
}

// MediaService stores uploaded images and videos and hands back the
// URL they are served from. Filenames are replaced with a uuid so
// client names never collide.
type MediaService struct {
	store   mediaStore
	metrics *metrics.MetricsRegistry
}

func NewMediaService(store mediaStore, reg *metrics.MetricsRegistry) *MediaService {
	return &MediaService{store: store, metrics: reg}
}

// Upload validates the content type and size, stores the file, and
// returns its public URL.
func (s *MediaService) Upload(ctx context.Context, src io.Reader, originalName, contentType string, size int64) (string, error) {
	kind := mediaKind(contentType)
	if kind == "" {
		return "", apperrors.NewValidation("Only image and video uploads are allowed")
	}
	if size > maxUploadBytes {
		return "", apperrors.NewValidation("File exceeds the 200MB upload limit")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	id, err := s.store.Upload(ctx, src, name, contentType)
	if err != nil {
		return "", err
	}

	if s.metrics != nil {
		s.metrics.MediaUploadsTotal.WithLabelValues(kind).Inc()
	}
	return fmt.Sprintf("/api/media/%s", id), nil
}

// Open returns a readable handle on a stored file, defaulting the
// content type when none was recorded.
func (s *MediaService) Open(ctx context.Context, id string) (*repositories.StoredFile, error) {
	file, err := s.store.Open(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.ContentType == "" {
		file.ContentType = "application/octet-stream"
	}
	return file, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func mediaKind(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return ""
	}
}
