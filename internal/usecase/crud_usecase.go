package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
)

// CrudUseCase is the generic read side shared by every catalogued
// resource: constrained listing, lookup by id, deletion and creation
// stats. Resource-specific use cases embed it and add their write
// rules on top.
type CrudUseCase[T any] struct {
	store  repository.CrudStore[T]
	spec   *queryparams.Spec
	logger *zap.Logger
}

func NewCrudUseCase[T any](store repository.CrudStore[T], spec *queryparams.Spec, logger *zap.Logger) *CrudUseCase[T] {
	return &CrudUseCase[T]{
		store:  store,
		spec:   spec,
		logger: logger,
	}
}

// List runs the query described by params against the resource's
// whitelist. It returns the page of items, the total match count and
// the resolved query so callers can build pagination metadata.
func (uc *CrudUseCase[T]) List(ctx context.Context, params queryparams.Params) ([]T, int, *queryparams.Query, error) {
	q := queryparams.NewBuilder(uc.spec, params, uc.logger).Build()

	items, total, err := uc.store.List(ctx, q)
	if err != nil {
		return nil, 0, nil, err
	}
	return items, total, q, nil
}

func (uc *CrudUseCase[T]) Show(ctx context.Context, id int64) (*T, error) {
	return uc.store.GetByID(ctx, id)
}

func (uc *CrudUseCase[T]) Delete(ctx context.Context, id int64) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Resource deleted", zap.Int64("id", id))
	return nil
}

func (uc *CrudUseCase[T]) Stats(ctx context.Context) (*domain.ResourceStats, error) {
	return uc.store.Stats(ctx)
}
