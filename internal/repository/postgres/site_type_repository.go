package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
)

// SiteTypeColumns is the allowed display field list of the site type
// resource.
var SiteTypeColumns = []string{"id", "code", "label", "created_at"}

var siteTypeWritable = []string{"code", "label"}

type siteTypeRepository struct {
	*CrudRepository[domain.SiteType]
	db     *DB
	logger *zap.Logger
}

func NewSiteTypeRepository(db *DB) repository.SiteTypeRepository {
	return &siteTypeRepository{
		CrudRepository: NewCrudRepository[domain.SiteType](
			db, "site_type", siteTypeWritable, SiteTypeColumns, errors.ErrSiteTypeNotFound,
		),
		db:     db,
		logger: db.logger,
	}
}

func (r *siteTypeRepository) GetByCode(ctx context.Context, code string) (*domain.SiteType, error) {
	var siteType domain.SiteType
	err := getContext(ctx, r.db, &siteType,
		"SELECT id, code, label, created_at FROM site_type WHERE code = $1", code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get site type by code", zap.String("code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &siteType, nil
}
