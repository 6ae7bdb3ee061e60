package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

// ObjectStore keeps the original uploaded bytes so a user can re-run
// generation without re-uploading. Uploads are best-effort.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}

type r2Store struct {
	client *s3.Client
	bucket string
}

// NewObjectStoreFromEnv builds an R2-backed store from R2_* variables and
// returns nil when they are absent, which disables file storage entirely.
func NewObjectStoreFromEnv(ctx context.Context) ObjectStore {
	accountID := os.Getenv("R2_ACCOUNT_ID")
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY")
	secretKey := os.Getenv("R2_SECRET_KEY")
	if accountID == "" || bucket == "" || accessKey == "" || secretKey == "" {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		config.Logger().WithError(err).Warn("Failed to load R2 credentials, file storage disabled")
		return nil
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &r2Store{client: client, bucket: bucket}
}

func (s *r2Store) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}
