package repositories

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/config"
)

// ObjectStorageRepository uploads images to an S3-compatible bucket.
type ObjectStorageRepository struct {
	client    *minio.Client
	publicURL string
}

func NewObjectStorageRepository(cfg config.StorageConfig) (*ObjectStorageRepository, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = strings.TrimRight(client.EndpointURL().String(), "/")
	}

	return &ObjectStorageRepository{client: client, publicURL: publicURL}, nil
}

// Upload writes data as bucket/name, replacing any existing object, and
// returns its public URL.
func (r *ObjectStorageRepository) Upload(ctx context.Context, name string, data []byte, bucket, contentType string) (string, error) {
	_, err := r.client.PutObject(ctx, bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		return "", apperrors.Storage("Failed to upload image", err)
	}

	return PublicObjectURL(r.publicURL, bucket, name), nil
}

// PublicObjectURL joins base, bucket and the escaped object name.
func PublicObjectURL(base, bucket, name string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(name)
}
