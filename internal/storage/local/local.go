// Package local implements the blob store on the local filesystem.
// Stored files live under a configured root directory and are exposed
// through a configured base URL.
package local

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/config"
	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
)

// allowedExtensions lists the accepted image extensions, lowercase,
// without the leading dot.
var allowedExtensions = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"webp": true,
}

type Storage struct {
	root    string
	baseURL string
	logger  *zap.Logger
}

func New(cfg *config.StorageConfig, logger *zap.Logger) (*Storage, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Storage{
		root:    cfg.Directory,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}, nil
}

var _ repository.FileStorage = (*Storage)(nil)

// Upload writes the file under <root>/<dir> with a unique generated
// name and returns its durable reference.
func (s *Storage) Upload(ctx context.Context, file *multipart.FileHeader, dir string) (*domain.StoredFile, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedExtensions[ext] {
		return nil, errors.ErrUnsupportedFileType
	}

	targetDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		s.logger.Error("Failed to create upload directory", zap.String("dir", targetDir), zap.Error(err))
		return nil, errors.ErrFileStorageError
	}

	filename := generateFilename(ext)
	relPath := filepath.ToSlash(filepath.Join(dir, filename))

	src, err := file.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", zap.String("name", file.Filename), zap.Error(err))
		return nil, errors.ErrFileStorageError
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(targetDir, filename))
	if err != nil {
		s.logger.Error("Failed to create stored file", zap.String("path", relPath), zap.Error(err))
		return nil, errors.ErrFileStorageError
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		s.logger.Error("Failed to write stored file", zap.String("path", relPath), zap.Error(err))
		return nil, errors.ErrFileStorageError
	}

	s.logger.Debug("File stored",
		zap.String("path", relPath),
		zap.Int64("size", written),
	)

	return &domain.StoredFile{
		URL:          s.baseURL + "/" + relPath,
		Path:         relPath,
		Size:         float64(written),
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
	}, nil
}

// Delete removes a stored file. It accepts either the relative path
// returned by Upload or the public URL derived from it. A missing file
// is not an error.
func (s *Storage) Delete(ctx context.Context, path string) error {
	path = strings.TrimPrefix(path, s.baseURL+"/")
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("Failed to delete stored file", zap.String("path", path), zap.Error(err))
		return errors.ErrFileStorageError
	}
	return nil
}

// generateFilename builds a collision-resistant name,
// e.g. 20260831_142501_1a2b3c4d.png.
func generateFilename(ext string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s.%s", time.Now().Format("20060102_150405"), random, ext)
}
