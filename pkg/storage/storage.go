// Package storage stores uploaded post images and serves them back.
// The backend only has to accept a byte stream and return a retrievable
// path; disk is the default, S3 is selected by configuration.
package storage

import (
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/sergey-xx/Blogicum/pkg/config"
)

type Storage interface {
	Save(name string, reader io.Reader) (int64, error)
	Load(name string, writer io.Writer) (int64, error)
	Delete(name string) error
}

// NewFromConfig picks the backend: S3 when a bucket is configured,
// local disk otherwise.
func NewFromConfig(cfg *config.Config) (Storage, error) {
	if cfg.S3Bucket != "" {
		return NewS3Storage(cfg.S3Bucket, cfg.S3Region)
	}
	return NewDiskStorage(cfg.MediaDir), nil
}

// ImagePath builds a unique storage path for an uploaded image,
// keeping the original extension.
func ImagePath(originalName string) string {
	return "posts/" + uuid.NewString() + path.Ext(originalName)
}
