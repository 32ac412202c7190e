package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/apperrors"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type memObjects struct {
	name, bucket, contentType string
	data                      []byte
}

func (m *memObjects) Upload(_ context.Context, name string, data []byte, bucket, contentType string) (string, error) {
	m.name, m.bucket, m.contentType, m.data = name, bucket, contentType, data
	return "https://cdn.example.com/" + bucket + "/" + name, nil
}

func TestUploadImage(t *testing.T) {
	store := &memObjects{}
	svc := NewMediaService(store, "visionreports", 0)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := svc.UploadImage(context.Background(), "../My Photo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/visionreports/1700000000000-My-Photo.png", url)
	assert.Equal(t, "image/png", store.contentType)
	assert.Equal(t, "visionreports", store.bucket)
	assert.Equal(t, DefaultMaxUploadBytes, svc.MaxBytes())
}

func TestUploadImageRejections(t *testing.T) {
	store := &memObjects{}
	svc := NewMediaService(store, "b", 16)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "a.png", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UploadImage(ctx, "a.png", pngHeader)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "over the size limit")

	svc = NewMediaService(store, "b", 0)
	_, err = svc.UploadImage(ctx, "a.png", []byte("just some text"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UploadImage(ctx, "a.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>x()</script></svg>`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Empty(t, store.name)
}

func TestUploadImageWithoutStore(t *testing.T) {
	svc := NewMediaService(nil, "b", 0)
	_, err := svc.UploadImage(context.Background(), "a.png", pngHeader)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
