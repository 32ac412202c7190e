package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/utils"
)

const DefaultMaxUploadBytes int64 = 10 << 20

type ObjectStore interface {
	Upload(ctx context.Context, name string, data []byte, bucket, contentType string) (string, error)
}

// MediaService validates image uploads and stores them under a
// timestamped name.
type MediaService struct {
	store    ObjectStore
	bucket   string
	maxBytes int64
	now      func() time.Time
}

// NewMediaService returns a service that rejects uploads with a storage
// error when store is nil.
func NewMediaService(store ObjectStore, bucket string, maxBytes int64) *MediaService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &MediaService{store: store, bucket: bucket, maxBytes: maxBytes, now: time.Now}
}

func (s *MediaService) MaxBytes() int64 {
	return s.maxBytes
}

// UploadImage stores data and returns its public URL.
func (s *MediaService) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.Validation("No file uploaded")
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperrors.Validation(fmt.Sprintf("File exceeds the %d byte limit", s.maxBytes))
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") || mt.Is("image/svg+xml") {
		return "", apperrors.Validation("Only image files are allowed")
	}

	if s.store == nil {
		return "", apperrors.Storage("Failed to upload image", fmt.Errorf("object storage not configured"))
	}

	name := ObjectName(s.now(), filename)
	return s.store.Upload(ctx, name, data, s.bucket, mt.String())
}

// ObjectName returns "<unix millis>-<sanitized filename>".
func ObjectName(at time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), utils.SanitizeFileName(filename))
}
