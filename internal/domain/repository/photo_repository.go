package repository

import (
	"context"

	"github.com/SpirahlDev/sig-backend/internal/domain"
)

// PhotoRepository persists photo metadata and the site<->photo
// attachment links.
type PhotoRepository interface {
	Create(ctx context.Context, url string, size float64) (*domain.Photo, error)

	Attach(ctx context.Context, siteID, photoID int64) error

	// GetAttachment returns the link record, or (nil, nil) when the
	// photo is not attached to the site.
	GetAttachment(ctx context.Context, siteID, photoID int64) (*domain.PhotoAttachment, error)

	Detach(ctx context.Context, siteID, photoID int64) error

	GetByID(ctx context.Context, id int64) (*domain.Photo, error)

	Delete(ctx context.Context, id int64) error

	// ListBySiteIDs returns the photos of each given site in one batched
	// query, keyed by site id.
	ListBySiteIDs(ctx context.Context, siteIDs []int64) (map[int64][]domain.Photo, error)
}
