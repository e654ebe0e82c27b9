// Package blob stores uploaded client documents in S3-compatible
// object storage (MinIO in local development).
package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
)

// Storage is the document blob store.
type Storage interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}

type s3Storage struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3Storage builds a [Storage] from static credentials. The custom
// BaseEndpoint and path-style addressing are what MinIO needs.
func NewS3Storage(ctx context.Context, cfg config.Blob, log *logger.Logger) (Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.Bucket).Msg("blob storage initialized")

	return &s3Storage{client: client, bucket: cfg.Bucket, logger: log}, nil
}

// NewStorageKey returns a date-partitioned object key for a new upload.
func NewStorageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("documents/%s/%d/%d/%d/%s", userID, d.Year(), d.Month(), d.Day(), uuid.NewString())
}

func (s *s3Storage) Put(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("error uploading object")
		return fmt.Errorf("put object %q: %w", key, err)
	}

	return nil
}

func (s *s3Storage) Get(ctx context.Context, key string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("error downloading object")
		return nil, "", fmt.Errorf("get object %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read object %q: %w", key, err)
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	return data, contentType, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("error deleting object")
		return fmt.Errorf("delete object %q: %w", key, err)
	}

	return nil
}
