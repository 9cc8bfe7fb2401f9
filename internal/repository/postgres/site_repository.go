package postgres

import (
	"context"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
)

// SiteColumns is the full column list of the site table, which doubles
// as the resource's allowed display fields.
var SiteColumns = []string{
	"id", "name", "description", "lat", "lon", "city",
	"site_creation_date", "site_type_id", "created_at",
}

// siteWritable are the columns accepted on insert and update.
var siteWritable = []string{
	"name", "description", "lat", "lon", "city", "site_creation_date", "site_type_id",
}

type siteRepository struct {
	*CrudRepository[domain.Site]
	db     *DB
	photos repository.PhotoRepository
	logger *zap.Logger
}

func NewSiteRepository(db *DB, photos repository.PhotoRepository) repository.SiteRepository {
	return &siteRepository{
		CrudRepository: NewCrudRepository[domain.Site](
			db, "site", siteWritable, SiteColumns, errors.ErrSiteNotFound,
		),
		db:     db,
		photos: photos,
		logger: db.logger,
	}
}

func (r *siteRepository) List(ctx context.Context, q *queryparams.Query) ([]domain.Site, int, error) {
	sites, total, err := r.CrudRepository.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if err := r.loadRelations(ctx, sites); err != nil {
		return nil, 0, err
	}
	return sites, total, nil
}

func (r *siteRepository) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	site, err := r.CrudRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	single := []domain.Site{*site}
	if err := r.loadRelations(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// Delete removes the site and its attachment links atomically. Photo
// rows are left in place; an unattached photo is an orphan, not an
// implicit delete.
func (r *siteRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithinTx(ctx, func(ctx context.Context) error {
		_, err := r.db.ext(ctx).ExecContext(ctx,
			"DELETE FROM site_has_photo WHERE site_id = $1", id)
		if err != nil {
			r.logger.Error("Failed to delete site attachments", zap.Int64("site_id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
		return r.CrudRepository.Delete(ctx, id)
	})
}

// FindNearby pushes the great-circle distance computation into the
// database and filters and orders there. The acos argument is clamped
// to [-1, 1] so identical coordinates cannot produce NaN through float
// rounding.
func (r *siteRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Site, error) {
	query := `
		SELECT id, name, description, lat, lon, city,
		       site_creation_date, site_type_id, created_at, distance
		FROM (
			SELECT *,
				(6371 * acos(LEAST(1.0, GREATEST(-1.0,
					cos(radians($1)) * cos(radians(lat)) * cos(radians(lon) - radians($2)) +
					sin(radians($1)) * sin(radians(lat))
				)))) AS distance
			FROM site
		) s
		WHERE s.distance <= $3
		ORDER BY s.distance
	`

	sites := []domain.Site{}
	if err := selectContext(ctx, r.db, &sites, query, lat, lon, radiusKm); err != nil {
		r.logger.Error("Failed to find nearby sites",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("radius_km", radiusKm),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	if err := r.loadRelations(ctx, sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// loadRelations eager-loads site types and photos for a batch of sites
// with one query per relation.
func (r *siteRepository) loadRelations(ctx context.Context, sites []domain.Site) error {
	if len(sites) == 0 {
		return nil
	}

	siteIDs := make([]int64, 0, len(sites))
	typeIDs := make([]int64, 0, len(sites))
	for _, s := range sites {
		siteIDs = append(siteIDs, s.ID)
		if s.SiteTypeID != nil {
			typeIDs = append(typeIDs, *s.SiteTypeID)
		}
	}

	types := map[int64]domain.SiteType{}
	if len(typeIDs) > 0 {
		rows := []domain.SiteType{}
		err := selectContext(ctx, r.db, &rows,
			"SELECT id, code, label, created_at FROM site_type WHERE id = ANY($1)",
			pq.Array(typeIDs))
		if err != nil {
			r.logger.Error("Failed to load site types", zap.Error(err))
			return errors.ErrDatabaseError
		}
		for _, t := range rows {
			types[t.ID] = t
		}
	}

	photosBySite, err := r.photos.ListBySiteIDs(ctx, siteIDs)
	if err != nil {
		return err
	}

	for i := range sites {
		if sites[i].SiteTypeID != nil {
			if t, ok := types[*sites[i].SiteTypeID]; ok {
				siteType := t
				sites[i].SiteType = &siteType
			}
		}
		sites[i].Photos = photosBySite[sites[i].ID]
	}
	return nil
}
