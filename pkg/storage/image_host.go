package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"food-ordering/pkg/utils"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageUpload is one file received from a multipart request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredImage is what the host returns for an uploaded file.
type StoredImage struct {
	ID  string
	URL string
}

// ImageHost stores images remotely and serves them over a public URL.
type ImageHost interface {
	Upload(ctx context.Context, folder string, file ImageUpload) (StoredImage, error)
	Destroy(ctx context.Context, id string) error
}

// MinioImageHost implements ImageHost on MinIO/S3 compatible storage.
type MinioImageHost struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioImageHost connects to MinIO and ensures the bucket exists.
func NewMinioImageHost(config utils.StorageConfig) (*MinioImageHost, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	publicURL := config.PublicURL
	if publicURL == "" {
		scheme := "http"
		if config.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + config.Endpoint
	}

	return &MinioImageHost{
		client:    client,
		bucket:    config.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores the file under a fresh key inside folder. The key is the image id.
func (m *MinioImageHost) Upload(ctx context.Context, folder string, file ImageUpload) (StoredImage, error) {
	key := utils.GenerateImageKey(folder, file.Filename)

	_, err := m.client.PutObject(ctx, m.bucket, key, file.Body, file.Size,
		minio.PutObjectOptions{ContentType: file.ContentType})
	if err != nil {
		return StoredImage{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return StoredImage{ID: key, URL: m.URL(key)}, nil
}

// Destroy removes an object. Removing a missing key is not an error.
func (m *MinioImageHost) Destroy(ctx context.Context, id string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, id, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object %s: %w", id, err)
	}
	return nil
}

// URL is the public address of key.
func (m *MinioImageHost) URL(key string) string {
	return m.publicURL + "/" + m.bucket + "/" + key
}
