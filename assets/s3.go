package assets

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/user/chatline-go/config"
)

// S3Store implements Uploader against any S3-compatible endpoint (MinIO
// in development, S3 proper elsewhere).
type S3Store struct {
	client *s3.Client
	cfg    *config.AssetConfig
}

// NewS3Store builds the S3 client with static credentials and the
// configured endpoint.
func NewS3Store(ctx context.Context, cfg *config.AssetConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset store configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		// Bucket-in-path addressing, required by MinIO.
		o.UsePathStyle = true
	})

	return &S3Store{client: client, cfg: cfg}, nil
}

// Upload decodes a base64 image payload, stores it under a
// date-partitioned key, and returns the public object URL.
func (s *S3Store) Upload(ctx context.Context, payload string) (string, error) {
	contentType, data, err := decodePayload(payload)
	if err != nil {
		return "", err
	}

	key := objectKey(time.Now(), uuid.New())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store asset: %w", err)
	}

	base := strings.TrimSuffix(s.cfg.PublicBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, s.cfg.Bucket, key), nil
}

// objectKey partitions uploads by date so buckets stay browsable:
// uploads/<yyyy>/<mm>/<dd>/<uuid>.
func objectKey(now time.Time, id uuid.UUID) string {
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s", now.Year(), now.Month(), now.Day(), id)
}
