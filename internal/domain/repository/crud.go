package repository

import (
	"context"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
)

// CrudStore is the storage-access capability the generic CRUD machinery
// is parametrized with: one entity type, whitelisted columns, and the
// constrained queries produced by the queryparams engine.
type CrudStore[T any] interface {
	// List executes the constrained query and returns the matching rows
	// plus the total count before pagination. When q.All is set every
	// matching row is returned and the count equals the item count.
	List(ctx context.Context, q *queryparams.Query) ([]T, int, error)

	GetByID(ctx context.Context, id int64) (*T, error)

	// Insert persists a row from whitelisted column values and returns
	// the stored entity.
	Insert(ctx context.Context, values map[string]interface{}) (*T, error)

	Update(ctx context.Context, id int64, values map[string]interface{}) (*T, error)

	Delete(ctx context.Context, id int64) error

	// Stats summarizes creation activity of the resource table.
	Stats(ctx context.Context) (*domain.ResourceStats, error)
}

// Transactor runs a function inside one atomic storage transaction. The
// transaction travels in the context, so repository calls made with the
// inner context join it automatically.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
