package repository

import (
	"context"

	"github.com/SpirahlDev/sig-backend/internal/domain"
)

// SiteTypeRepository persists site type reference data.
type SiteTypeRepository interface {
	CrudStore[domain.SiteType]

	// GetByCode returns (nil, nil) when no type carries the code.
	GetByCode(ctx context.Context, code string) (*domain.SiteType, error)
}
