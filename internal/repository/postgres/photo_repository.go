package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
)

type photoRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewPhotoRepository(db *DB) repository.PhotoRepository {
	return &photoRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *photoRepository) Create(ctx context.Context, url string, size float64) (*domain.Photo, error) {
	var photo domain.Photo
	err := getContext(ctx, r.db, &photo,
		"INSERT INTO photo (url, size) VALUES ($1, $2) RETURNING id, url, size, created_at",
		url, size)
	if err != nil {
		r.logger.Error("Failed to create photo", zap.String("url", url), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &photo, nil
}

func (r *photoRepository) Attach(ctx context.Context, siteID, photoID int64) error {
	_, err := r.db.ext(ctx).ExecContext(ctx,
		"INSERT INTO site_has_photo (site_id, photo_id) VALUES ($1, $2)",
		siteID, photoID)
	if err != nil {
		r.logger.Error("Failed to attach photo",
			zap.Int64("site_id", siteID), zap.Int64("photo_id", photoID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *photoRepository) GetAttachment(ctx context.Context, siteID, photoID int64) (*domain.PhotoAttachment, error) {
	var att domain.PhotoAttachment
	err := getContext(ctx, r.db, &att,
		"SELECT site_id, photo_id, created_at FROM site_has_photo WHERE site_id = $1 AND photo_id = $2",
		siteID, photoID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get attachment",
			zap.Int64("site_id", siteID), zap.Int64("photo_id", photoID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &att, nil
}

func (r *photoRepository) Detach(ctx context.Context, siteID, photoID int64) error {
	_, err := r.db.ext(ctx).ExecContext(ctx,
		"DELETE FROM site_has_photo WHERE site_id = $1 AND photo_id = $2",
		siteID, photoID)
	if err != nil {
		r.logger.Error("Failed to detach photo",
			zap.Int64("site_id", siteID), zap.Int64("photo_id", photoID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	var photo domain.Photo
	err := getContext(ctx, r.db, &photo,
		"SELECT id, url, size, created_at FROM photo WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrResourceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get photo", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &photo, nil
}

func (r *photoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ext(ctx).ExecContext(ctx, "DELETE FROM photo WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete photo", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *photoRepository) ListBySiteIDs(ctx context.Context, siteIDs []int64) (map[int64][]domain.Photo, error) {
	if len(siteIDs) == 0 {
		return map[int64][]domain.Photo{}, nil
	}

	query := `
		SELECT shp.site_id, p.id, p.url, p.size, p.created_at
		FROM site_has_photo shp
		JOIN photo p ON p.id = shp.photo_id
		WHERE shp.site_id = ANY($1)
		ORDER BY shp.created_at, p.id
	`

	rows, err := r.db.ext(ctx).QueryxContext(ctx, query, pq.Array(siteIDs))
	if err != nil {
		r.logger.Error("Failed to list photos by site ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	result := map[int64][]domain.Photo{}
	for rows.Next() {
		var siteID int64
		var p domain.Photo
		if err := rows.Scan(&siteID, &p.ID, &p.URL, &p.Size, &p.CreatedAt); err != nil {
			r.logger.Error("Failed to scan photo row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		result[siteID] = append(result[siteID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return result, nil
}
