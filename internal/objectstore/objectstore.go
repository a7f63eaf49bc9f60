package objectstore

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"job-portal-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader is the object storage surface the services depend on.
type Uploader interface {
	Upload(ctx context.Context, objectName, contentType string, content io.Reader, size int64) (string, error)
}

// Client wraps an S3-compatible object store holding the resumes bucket.
type Client struct {
	mc            *minio.Client
	bucket        string
	publicBaseURL string
}

var _ Uploader = (*Client)(nil)

// NewClient creates a new object storage client from configuration.
func NewClient(cfg config.StorageConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &Client{
		mc:            mc,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// EnsureBucket provisions the resumes bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", c.bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", c.bucket, err)
	}
	log.Printf("Object storage bucket %q created", c.bucket)
	return nil
}

// Upload stores an object and returns its public URL. The caller picks a
// collision-free object name; uploads block until the storage round-trip completes.
func (c *Client) Upload(ctx context.Context, objectName, contentType string, content io.Reader, size int64) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, objectName, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", objectName, err)
	}
	return c.publicBaseURL + "/" + objectName, nil
}
