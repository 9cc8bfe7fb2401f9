package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
	"github.com/SpirahlDev/sig-backend/internal/pkg/utils"
	"github.com/SpirahlDev/sig-backend/internal/usecase"
)

// CrudHandler serves the read side every catalogued resource shares:
// constrained listing, lookup, deletion and stats. Resource handlers
// embed it and add their write endpoints.
type CrudHandler[T any] struct {
	uc       *usecase.CrudUseCase[T]
	resource string
	debug    bool
	logger   *zap.Logger
}

func NewCrudHandler[T any](uc *usecase.CrudUseCase[T], resource string, debug bool, logger *zap.Logger) *CrudHandler[T] {
	return &CrudHandler[T]{
		uc:       uc,
		resource: resource,
		debug:    debug,
		logger:   logger,
	}
}

// Index lists the resource according to the request's search, filter,
// date range, sort and pagination parameters. Pagination metadata is
// omitted when the full unpaginated set was requested.
func (h *CrudHandler[T]) Index(c *fiber.Ctx) error {
	params := queryparams.Parse(c.Queries())

	items, total, q, err := h.uc.List(c.Context(), params)
	if err != nil {
		h.logger.Error("Failed to list resources", zap.String("resource", h.resource), zap.Error(err))
		return utils.SendError(c, err, h.debug)
	}

	var meta *utils.Meta
	if !q.All {
		meta = utils.NewPageMeta(total, q.Page, q.Limit)
	}

	return utils.SendSuccess(c, http.StatusOK, h.resource+" retrieved successfully", items, meta)
}

func (h *CrudHandler[T]) Show(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	item, err := h.uc.Show(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, h.resource+" retrieved successfully", item, nil)
}

func (h *CrudHandler[T]) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err, h.debug)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, h.resource+" deleted successfully", nil, nil)
}

func (h *CrudHandler[T]) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.String("resource", h.resource), zap.Error(err))
		return utils.SendError(c, err, h.debug)
	}

	return utils.SendSuccess(c, http.StatusOK, h.resource+" stats retrieved successfully", stats, nil)
}

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, errors.ErrValidation.WithDetails(map[string]interface{}{
			name: "must be a positive integer",
		})
	}
	return int64(id), nil
}
