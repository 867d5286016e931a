package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrSignedUploadsUnsupported is returned by backends that cannot issue
// presigned upload URLs (currently only local disk).
var ErrSignedUploadsUnsupported = errors.New("storage backend does not support presigned uploads")

// Storage defines the interface for file storage operations. Uploads go
// straight from the browser to the backend via presigned PUT URLs; the
// API server never proxies file bytes.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for reading private files
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// GetUploadURL returns a presigned PUT URL the client uploads to directly
	GetUploadURL(ctx context.Context, path string, contentType string, expiry time.Duration) (string, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	PublicRead bool   // Make files public by default
}

// NewStorage creates a new storage instance based on configuration.
// R2 is S3-compatible, so both map onto the same backend.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3", "r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
