package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
	"github.com/SpirahlDev/sig-backend/internal/usecase"
	"github.com/SpirahlDev/sig-backend/internal/usecase/dto"
)

func newSiteTypeUseCase() (*usecase.SiteTypeUseCase, *MockSiteTypeRepository) {
	types := &MockSiteTypeRepository{}
	spec := queryparams.MustSpec([]string{"id", "code", "label", "created_at"})
	return usecase.NewSiteTypeUseCase(types, spec, zap.NewNop()), types
}

func TestSiteTypeUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when code is free", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		created := &domain.SiteType{ID: 1, Code: "unesco", Label: "UNESCO World Heritage"}
		types.On("GetByCode", ctx, "unesco").Return(nil, nil)
		types.On("Insert", ctx, map[string]interface{}{"code": "unesco", "label": "UNESCO World Heritage"}).
			Return(created, nil)

		siteType, err := uc.Create(ctx, &dto.CreateSiteTypeRequest{Code: "unesco", Label: "UNESCO World Heritage"})

		assert.NoError(t, err)
		assert.Equal(t, created, siteType)
		types.AssertExpectations(t)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		types.On("GetByCode", ctx, "unesco").Return(&domain.SiteType{ID: 1, Code: "unesco"}, nil)

		siteType, err := uc.Create(ctx, &dto.CreateSiteTypeRequest{Code: "unesco", Label: "Duplicate"})

		assert.Nil(t, siteType)
		assert.Equal(t, errors.ErrDuplicateSiteTypeCode, err)
		types.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		siteType, err := uc.Create(ctx, &dto.CreateSiteTypeRequest{Code: "", Label: ""})

		assert.Nil(t, siteType)
		assert.Error(t, err)
		types.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})
}

func TestSiteTypeUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("code change to a free code allowed", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		code := "natural"
		updated := &domain.SiteType{ID: 2, Code: "natural"}
		types.On("GetByCode", ctx, "natural").Return(nil, nil)
		types.On("Update", ctx, int64(2), map[string]interface{}{"code": "natural"}).Return(updated, nil)

		siteType, err := uc.Update(ctx, 2, &dto.UpdateSiteTypeRequest{Code: &code})

		assert.NoError(t, err)
		assert.Equal(t, updated, siteType)
		types.AssertExpectations(t)
	})

	t.Run("code owned by another type rejected", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		code := "unesco"
		types.On("GetByCode", ctx, "unesco").Return(&domain.SiteType{ID: 1, Code: "unesco"}, nil)

		siteType, err := uc.Update(ctx, 2, &dto.UpdateSiteTypeRequest{Code: &code})

		assert.Nil(t, siteType)
		assert.Equal(t, errors.ErrDuplicateSiteTypeCode, err)
		types.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("keeping own code is not a conflict", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		code := "unesco"
		current := &domain.SiteType{ID: 1, Code: "unesco"}
		types.On("GetByCode", ctx, "unesco").Return(current, nil)
		types.On("Update", ctx, int64(1), map[string]interface{}{"code": "unesco"}).Return(current, nil)

		siteType, err := uc.Update(ctx, 1, &dto.UpdateSiteTypeRequest{Code: &code})

		assert.NoError(t, err)
		assert.Equal(t, current, siteType)
	})

	t.Run("empty update returns current state", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		current := &domain.SiteType{ID: 1, Code: "unesco"}
		types.On("GetByID", ctx, int64(1)).Return(current, nil)

		siteType, err := uc.Update(ctx, 1, &dto.UpdateSiteTypeRequest{})

		assert.NoError(t, err)
		assert.Equal(t, current, siteType)
		types.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCrudUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the query from params and returns the page", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		items := []domain.SiteType{{ID: 1, Code: "unesco"}}
		types.On("List", ctx, mock.MatchedBy(func(q *queryparams.Query) bool {
			return q.Limit == 5 && q.Page == 2 && !q.All
		})).Return(items, 12, nil)

		got, total, q, err := uc.List(ctx, queryparams.Params{Limit: 5, Page: 2})

		assert.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Equal(t, 12, total)
		assert.Equal(t, 5, q.Limit)
		assert.Equal(t, 2, q.Page)
	})

	t.Run("all flag bypasses pagination", func(t *testing.T) {
		uc, types := newSiteTypeUseCase()

		items := []domain.SiteType{{ID: 1}, {ID: 2}}
		types.On("List", ctx, mock.MatchedBy(func(q *queryparams.Query) bool {
			return q.All
		})).Return(items, 2, nil)

		got, total, q, err := uc.List(ctx, queryparams.Params{All: true})

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 2, total)
		assert.True(t, q.All)
	})
}
