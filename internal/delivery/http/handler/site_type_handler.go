package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/utils"
	"github.com/SpirahlDev/sig-backend/internal/usecase"
	"github.com/SpirahlDev/sig-backend/internal/usecase/dto"
)

// SiteTypeHandler serves the site type reference data endpoints.
type SiteTypeHandler struct {
	*CrudHandler[domain.SiteType]

	typeUC *usecase.SiteTypeUseCase
	debug  bool
}

func NewSiteTypeHandler(typeUC *usecase.SiteTypeUseCase, debug bool, logger *zap.Logger) *SiteTypeHandler {
	return &SiteTypeHandler{
		CrudHandler: NewCrudHandler[domain.SiteType](typeUC.CrudUseCase, "Site types", debug, logger),
		typeUC:      typeUC,
		debug:       debug,
	}
}

func (h *SiteTypeHandler) Store(c *fiber.Ctx) error {
	var req dto.CreateSiteTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("Malformed request body"), h.debug)
	}

	siteType, err := h.typeUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusCreated, "Site type created successfully", siteType, nil)
}

func (h *SiteTypeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	var req dto.UpdateSiteTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("Malformed request body"), h.debug)
	}

	siteType, err := h.typeUC.Update(c.Context(), id, &req)
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, "Site type updated successfully", siteType, nil)
}
