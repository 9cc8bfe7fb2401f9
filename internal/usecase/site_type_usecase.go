package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
	"github.com/SpirahlDev/sig-backend/internal/pkg/validator"
	"github.com/SpirahlDev/sig-backend/internal/usecase/dto"
)

// SiteTypeUseCase manages the site type reference data. Codes are
// unique across types.
type SiteTypeUseCase struct {
	*CrudUseCase[domain.SiteType]

	types  repository.SiteTypeRepository
	logger *zap.Logger
}

func NewSiteTypeUseCase(types repository.SiteTypeRepository, spec *queryparams.Spec, logger *zap.Logger) *SiteTypeUseCase {
	return &SiteTypeUseCase{
		CrudUseCase: NewCrudUseCase[domain.SiteType](types, spec, logger),
		types:       types,
		logger:      logger,
	}
}

func (uc *SiteTypeUseCase) Create(ctx context.Context, req *dto.CreateSiteTypeRequest) (*domain.SiteType, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := uc.types.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrDuplicateSiteTypeCode
	}

	created, err := uc.types.Insert(ctx, req.Values())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Site type created",
		zap.Int64("id", created.ID),
		zap.String("code", created.Code),
	)
	return created, nil
}

func (uc *SiteTypeUseCase) Update(ctx context.Context, id int64, req *dto.UpdateSiteTypeRequest) (*domain.SiteType, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if req.Code != nil {
		existing, err := uc.types.GetByCode(ctx, *req.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.ErrDuplicateSiteTypeCode
		}
	}

	values := req.Values()
	if len(values) == 0 {
		return uc.types.GetByID(ctx, id)
	}
	return uc.types.Update(ctx, id, values)
}
