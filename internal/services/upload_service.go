package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"kasambahay_backend/internal/config"
	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/storage"
	"kasambahay_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadService issues presigned URLs. Validation here is advisory: it
// rejects obviously wrong requests early, but the object store enforces
// nothing beyond the signed content type, so consumers of stored files
// must not assume the metadata is truthful.
type UploadService interface {
	SignUpload(ctx context.Context, userID string, req *dto.SignUploadRequest) (*dto.SignUploadResponse, error)
	SignDownload(ctx context.Context, key string) (string, error)
}

type uploadService struct {
	store storage.Storage
	cfg   *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{store: store, cfg: cfg}
}

func (s *uploadService) SignUpload(ctx context.Context, userID string, req *dto.SignUploadRequest) (*dto.SignUploadResponse, error) {
	if req.SizeBytes > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !s.contentTypeAllowed(req.Folder, req.ContentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	key := buildObjectKey(req.Folder, userID, req.FileName)
	expiry := time.Duration(s.cfg.Upload.URLExpiryMinutes) * time.Minute

	url, err := s.store.GetUploadURL(ctx, key, req.ContentType, expiry)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SignUploadResponse{
		UploadURL: url,
		Key:       key,
		ExpiresIn: int(expiry.Seconds()),
	}, nil
}

func (s *uploadService) SignDownload(ctx context.Context, key string) (string, error) {
	expiry := time.Duration(s.cfg.Upload.URLExpiryMinutes) * time.Minute
	url, err := s.store.GetSignedURL(ctx, key, expiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *uploadService) contentTypeAllowed(folder, contentType string) bool {
	var allowed []string
	switch folder {
	case "avatars":
		allowed = s.cfg.Upload.AllowedImageTypes
	case "documents":
		allowed = s.cfg.Upload.AllowedDocTypes
	default:
		return false
	}
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// buildObjectKey yields {folder}/{userId}/{timestamp}-{uuid}-{filename}.
// The uuid prevents collisions; the sanitized original name keeps keys
// human-readable in the bucket console.
func buildObjectKey(folder, userID, fileName string) string {
	return fmt.Sprintf("%s/%s/%d-%s-%s",
		folder, userID, time.Now().Unix(), uuid.NewString(), sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." {
		return "file"
	}
	return out
}
