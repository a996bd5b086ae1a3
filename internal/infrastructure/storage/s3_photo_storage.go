// Package storage keeps the photos taken for photo fields in S3 or a MinIO
// bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	appconfig "checkmaster/internal/infrastructure/config"
	"checkmaster/internal/infrastructure/database"
	"checkmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingBucket = errors.New("photo bucket is required")

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3PhotoStorage struct {
	client   objectPutter
	bucket   string
	region   string
	endpoint string
}

var _ interfaces.IPhotoStorage = (*S3PhotoStorage)(nil)

// NewS3PhotoStorage builds the client from the shared AWS settings. With an
// S3 endpoint set, path-style addressing is used as MinIO requires.
func NewS3PhotoStorage(ctx context.Context, awsCfg appconfig.AWSConfig, bucket string) (*S3PhotoStorage, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, ErrMissingBucket
	}
	cfg, err := database.NewAWSConfig(ctx, awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if awsCfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(awsCfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3PhotoStorage{
		client:   client,
		bucket:   bucket,
		region:   awsCfg.Region,
		endpoint: awsCfg.S3Endpoint,
	}, nil
}

// Upload stores data under key and returns the object URL.
func (s *S3PhotoStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo to S3: %w", err)
	}
	return s.fileURL(key), nil
}

func (s *S3PhotoStorage) fileURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
