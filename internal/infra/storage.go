package infra

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/ser180/4R/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage holds the MinIO client for uploaded document binaries. Every call
// goes through the circuit breaker so an unreachable store fast-fails
// instead of stalling the upload endpoint.
type Storage struct {
	client  *minio.Client
	bucket  string
	breaker *CircuitBreaker
}

func NewStorage(cfg *config.Config, breaker *CircuitBreaker) (*Storage, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, err
	}

	s := &Storage{client: client, bucket: cfg.StorageBucket, breaker: breaker}

	// Ensure the bucket exists — idempotent, best effort at startup.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// BreakerState exposes the circuit state for the health endpoint.
func (s *Storage) BreakerState() CBState { return s.breaker.State() }

func (s *Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return s.breaker.Execute(func() error {
		_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
			ContentType: contentType,
		})
		return err
	})
}

func (s *Storage) PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	var u *url.URL
	err := s.breaker.Execute(func() error {
		var err error
		u, err = s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
		return err
	})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.breaker.Execute(func() error {
		return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	})
}
