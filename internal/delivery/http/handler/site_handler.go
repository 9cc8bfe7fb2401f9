package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/utils"
	"github.com/SpirahlDev/sig-backend/internal/usecase"
	"github.com/SpirahlDev/sig-backend/internal/usecase/dto"
)

// imagesFormField is the multipart field carrying site photo uploads.
const imagesFormField = "images"

// SiteHandler serves the site endpoints. Listing, lookup, deletion and
// stats come from the embedded generic handler; creation, update, the
// photo detach and the nearby search are site-specific.
type SiteHandler struct {
	*CrudHandler[domain.Site]

	siteUC *usecase.SiteUseCase
	debug  bool
	logger *zap.Logger
}

func NewSiteHandler(siteUC *usecase.SiteUseCase, debug bool, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		CrudHandler: NewCrudHandler[domain.Site](siteUC.CrudUseCase, "Sites", debug, logger),
		siteUC:      siteUC,
		debug:       debug,
		logger:      logger,
	}
}

// Store creates a site from a multipart form, attaching any uploaded
// images in the same transaction.
func (h *SiteHandler) Store(c *fiber.Ctx) error {
	var req dto.CreateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("Malformed request body"), h.debug)
	}

	site, err := h.siteUC.Create(c.Context(), &req, formImages(c))
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusCreated, "Site created successfully", site, nil)
}

// Update applies a partial update; images sent along are attached to
// the site.
func (h *SiteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	var req dto.UpdateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("Malformed request body"), h.debug)
	}

	site, err := h.siteUC.Update(c.Context(), id, &req, formImages(c))
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, "Site updated successfully", site, nil)
}

// Nearby returns the sites within a radius of a point, closest first.
func (h *SiteHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbySitesRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage("Malformed query parameters"), h.debug)
	}

	sites, err := h.siteUC.FindNearby(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, "Nearby sites retrieved successfully", sites, nil)
}

// DetachPhoto removes one photo from a site, blob first.
func (h *SiteHandler) DetachPhoto(c *fiber.Ctx) error {
	siteID, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}
	photoID, err := parseID(c, "photoId")
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	detached, err := h.siteUC.DetachPhoto(c.Context(), siteID, photoID)
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}
	if !detached {
		return utils.SendError(c, errors.ErrResourceNotFound.WithMessage("Photo is not attached to this site"), h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, "Photo detached successfully", nil, nil)
}

// formImages extracts uploaded image files; a non-multipart request
// simply carries none.
func formImages(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[imagesFormField]
}
