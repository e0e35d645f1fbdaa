// Package storage implements the blob store on S3 and in memory.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"frota_checklist/internal/infrastructure/config"
	"frota_checklist/internal/infrastructure/database"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// s3API is the subset of the S3 client used here.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3BlobStore stores checklist files in one bucket, keyed by their path.
type S3BlobStore struct {
	client  s3API
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IBlobStore = (*S3BlobStore)(nil)

func NewS3BlobStore(client *s3.Client, bucket string) *S3BlobStore {
	return &S3BlobStore{client: client, presign: s3.NewPresignClient(client), bucket: bucket}
}

// ConnectS3 creates the client from the service settings. S3_ENDPOINT switches
// to path-style addressing for local emulators such as MinIO.
func ConnectS3(cfg config.Config) *S3BlobStore {
	awsCfg, err := database.NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3BlobStore(client, cfg.S3Bucket)
}

// Upload refuses to overwrite: the write is conditional on the key not existing.
func (s *S3BlobStore) Upload(ctx context.Context, path string, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(path),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return fmt.Errorf("%w: %s", interfaces.ErrBlobExists, path)
		}
		log.Printf("[storage][s3] put failed bucket=%s key=%s err=%v", s.bucket, path, err)
		return err
	}
	return nil
}

func (s *S3BlobStore) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
