package repository

import (
	"context"

	"github.com/SpirahlDev/sig-backend/internal/domain"
)

// SiteRepository persists sites. List and GetByID eager-load the site
// type and photo relations.
type SiteRepository interface {
	CrudStore[domain.Site]

	// FindNearby returns sites within radiusKm of the given point,
	// ordered by ascending great-circle distance. The distance is
	// computed by the storage engine, not row-by-row in Go.
	FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Site, error)
}
