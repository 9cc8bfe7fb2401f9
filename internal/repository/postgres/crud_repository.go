package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
)

// CrudRepository is a generic storage engine for one table. It is
// parametrized with the column whitelists of its resource; only
// whitelisted identifiers are ever interpolated into SQL text, values
// always travel as positional arguments.
type CrudRepository[T any] struct {
	db       *DB
	logger   *zap.Logger
	table    string
	writable []string
	columns  []string
	notFound *errors.AppError
}

func NewCrudRepository[T any](db *DB, table string, writable, columns []string, notFound *errors.AppError) *CrudRepository[T] {
	return &CrudRepository[T]{
		db:       db,
		logger:   db.logger,
		table:    table,
		writable: writable,
		columns:  columns,
		notFound: notFound,
	}
}

// List executes a constrained query. Unless q.All is set, it runs a
// count query over the same constraints and a page-bounded select.
func (r *CrudRepository[T]) List(ctx context.Context, q *queryparams.Query) ([]T, int, error) {
	selectSQL := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		strings.Join(q.Columns, ", "), r.table, q.WhereClause(), q.OrderClause(),
	)

	if q.All {
		items := []T{}
		if err := sqlx.SelectContext(ctx, r.db.ext(ctx), &items, selectSQL, q.Args...); err != nil {
			r.logger.Error("Failed to list rows", zap.String("table", r.table), zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		return items, len(items), nil
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, q.WhereClause())
	var total int
	if err := sqlx.GetContext(ctx, r.db.ext(ctx), &total, countSQL, q.Args...); err != nil {
		r.logger.Error("Failed to count rows", zap.String("table", r.table), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	selectSQL += fmt.Sprintf(" LIMIT %d OFFSET %d", q.Limit, q.Offset())
	items := []T{}
	if err := sqlx.SelectContext(ctx, r.db.ext(ctx), &items, selectSQL, q.Args...); err != nil {
		r.logger.Error("Failed to list rows", zap.String("table", r.table), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return items, total, nil
}

func (r *CrudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1",
		strings.Join(r.columns, ", "), r.table,
	)

	var item T
	err := sqlx.GetContext(ctx, r.db.ext(ctx), &item, query, id)
	if err == sql.ErrNoRows {
		return nil, r.notFound
	}
	if err != nil {
		r.logger.Error("Failed to get row by id",
			zap.String("table", r.table), zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &item, nil
}

func (r *CrudRepository[T]) Insert(ctx context.Context, values map[string]interface{}) (*T, error) {
	cols, args := r.writableValues(values)
	if len(cols) == 0 {
		return nil, errors.ErrValidation
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(r.columns, ", "),
	)

	var item T
	if err := sqlx.GetContext(ctx, r.db.ext(ctx), &item, query, args...); err != nil {
		r.logger.Error("Failed to insert row", zap.String("table", r.table), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &item, nil
}

func (r *CrudRepository[T]) Update(ctx context.Context, id int64, values map[string]interface{}) (*T, error) {
	cols, args := r.writableValues(values)
	if len(cols) == 0 {
		return r.GetByID(ctx, id)
	}

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.table,
		strings.Join(assignments, ", "),
		len(args),
		strings.Join(r.columns, ", "),
	)

	var item T
	err := sqlx.GetContext(ctx, r.db.ext(ctx), &item, query, args...)
	if err == sql.ErrNoRows {
		return nil, r.notFound
	}
	if err != nil {
		r.logger.Error("Failed to update row",
			zap.String("table", r.table), zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &item, nil
}

func (r *CrudRepository[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ext(ctx).ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table), id)
	if err != nil {
		r.logger.Error("Failed to delete row",
			zap.String("table", r.table), zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return r.notFound
	}
	return nil
}

// writableValues filters the supplied values down to the writable column
// whitelist, in a stable order.
func (r *CrudRepository[T]) writableValues(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	for col := range values {
		if contains(r.writable, col) {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)

	args := make([]interface{}, len(cols))
	for i, col := range cols {
		args[i] = values[col]
	}
	return cols, args
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
