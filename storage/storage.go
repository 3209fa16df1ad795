// Package storage persists uploaded photos. The local driver writes to a
// directory served at /uploads; the s3 driver targets any S3-compatible
// bucket.
package storage

import (
	"fmt"
	"mime/multipart"

	"github.com/campus-market/api-go/config"
)

type Storage interface {
	// Save stores the uploaded file and returns the path or URL under
	// which it is reachable.
	Save(file *multipart.FileHeader) (string, error)
	// Delete removes a previously saved file. Deleting a path that no
	// longer exists is not an error.
	Delete(path string) error
}

func New(cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocal(cfg.UploadDir)
	case "s3":
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
