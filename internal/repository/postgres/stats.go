package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
)

// Stats summarizes creation activity of the repository's table. The
// date windows are computed in the database so that application and
// storage clocks cannot disagree.
func (r *CrudRepository[T]) Stats(ctx context.Context) (*domain.ResourceStats, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE created_at::date = CURRENT_DATE) AS created_today,
			COUNT(*) FILTER (WHERE created_at >= date_trunc('week', now())) AS created_this_week,
			COUNT(*) FILTER (WHERE created_at >= date_trunc('month', now())) AS created_this_month
		FROM %s
	`, r.table)

	var counters struct {
		Total            int `db:"total"`
		CreatedToday     int `db:"created_today"`
		CreatedThisWeek  int `db:"created_this_week"`
		CreatedThisMonth int `db:"created_this_month"`
	}
	if err := getContext(ctx, r.db, &counters, query); err != nil {
		r.logger.Error("Failed to compute resource stats", zap.String("table", r.table), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stats := &domain.ResourceStats{
		Total:            counters.Total,
		CreatedToday:     counters.CreatedToday,
		CreatedThisWeek:  counters.CreatedThisWeek,
		CreatedThisMonth: counters.CreatedThisMonth,
	}

	latest, err := r.entryStamp(ctx, "DESC")
	if err != nil {
		return nil, err
	}
	oldest, err := r.entryStamp(ctx, "ASC")
	if err != nil {
		return nil, err
	}
	stats.LatestEntry = latest
	stats.OldestEntry = oldest

	return stats, nil
}

func (r *CrudRepository[T]) entryStamp(ctx context.Context, direction string) (*domain.EntryStamp, error) {
	query := fmt.Sprintf(
		"SELECT id, created_at FROM %s ORDER BY created_at %s, id %s LIMIT 1",
		r.table, direction, direction,
	)

	var stamp domain.EntryStamp
	err := getContext(ctx, r.db, &stamp, query)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read entry stamp", zap.String("table", r.table), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &stamp, nil
}
