package config

import (
	"os"
)

type StorageConfig struct {
	Driver          string // "local" or "s3"
	UploadDir       string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetStorageConfig() *StorageConfig {
	cfg := &StorageConfig{
		Driver:          os.Getenv("STORAGE_DRIVER"),
		UploadDir:       os.Getenv("UPLOAD_DIR"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("S3_BUCKET"),
		PublicURL:       os.Getenv("S3_PUBLIC_URL"),
		Region:          os.Getenv("S3_REGION"),
	}

	if cfg.Driver == "" {
		cfg.Driver = "local"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.Region == "" {
		cfg.Region = "auto"
	}

	return cfg
}
