package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"news-service/app/domain"
	"news-service/app/port"
)

// MaxUploadSize caps accepted image uploads.
const MaxUploadSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalFileStore saves uploads onto the local disk and serves them from the
// service's own /uploads route.
type LocalFileStore struct {
	dir       string
	publicURL string
	logger    *slog.Logger
}

// NewLocalFileStore creates the upload directory if needed.
func NewLocalFileStore(dir, publicBaseURL string, logger *slog.Logger) (port.FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalFileStore{
		dir:       dir,
		publicURL: publicBaseURL,
		logger:    logger.With("component", "file_store"),
	}, nil
}

// Save writes the uploaded file to disk under a collision-free name and
// returns the URL it will be served from.
func (s *LocalFileStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrValidation, MaxUploadSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported image type %q", domain.ErrValidation, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.New(), ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(path)
		return "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrValidation, MaxUploadSize)
	}

	s.logger.Info("Stored upload", "file", name, "bytes", written)
	return s.publicURL + "/uploads/" + name, nil
}
