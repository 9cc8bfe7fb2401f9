package repository

import (
	"context"
	"mime/multipart"

	"github.com/SpirahlDev/sig-backend/internal/domain"
)

// FileStorage is the blob store: it accepts raw uploaded files and
// returns durable references. It is not transactional; callers that
// need atomicity must compensate on rollback themselves.
type FileStorage interface {
	Upload(ctx context.Context, file *multipart.FileHeader, dir string) (*domain.StoredFile, error)

	// Delete accepts the path returned by Upload, or the public URL
	// derived from it.
	Delete(ctx context.Context, path string) error
}
