package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/campus-market/api-go/config"
)

type S3 struct {
	Client    *s3.Client
	Bucket    string
	PublicURL string
}

func NewS3(cfg *config.StorageConfig) (*S3, error) {
	if cfg.Endpoint == "" || cfg.BucketName == "" {
		return nil, fmt.Errorf("s3 storage requires S3_ENDPOINT and S3_BUCKET")
	}

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &S3{
		Client:    client,
		Bucket:    cfg.BucketName,
		PublicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), filepath.Ext(file.Filename))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.PublicURL, key), nil
}

func (s *S3) Delete(path string) error {
	key := strings.TrimPrefix(path, s.PublicURL+"/")
	if !strings.HasPrefix(key, "uploads/") {
		// Not one of ours.
		return nil
	}

	_, err := s.Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	return err
}
