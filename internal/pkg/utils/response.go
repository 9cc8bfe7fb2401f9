package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
)

// Envelope is the uniform response body of every endpoint. A new value is
// built per call; nothing is shared between requests.
type Envelope struct {
	StatusCode    int         `json:"status_code"`
	StatusMessage string      `json:"status_message"`
	Data          interface{} `json:"data"`
	MetaData      *Meta       `json:"meta_data,omitempty"`
	Errors        interface{} `json:"errors,omitempty"`
}

// Meta carries pagination information alongside list payloads.
type Meta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	LastPage int `json:"last_page"`
}

// NewPageMeta computes the page count from a total and an effective limit.
func NewPageMeta(total, page, limit int) *Meta {
	lastPage := 1
	if limit > 0 {
		lastPage = (total + limit - 1) / limit
	}
	if lastPage < 1 {
		lastPage = 1
	}
	return &Meta{Total: total, Page: page, Limit: limit, LastPage: lastPage}
}

func SendSuccess(c *fiber.Ctx, httpStatus int, message string, data interface{}, meta *Meta) error {
	return c.Status(httpStatus).JSON(Envelope{
		StatusCode:    errors.ServiceSuccess,
		StatusMessage: message,
		Data:          data,
		MetaData:      meta,
	})
}

// SendError maps an error to the response envelope. Technical error
// messages are hidden unless debug is set, so storage internals never
// leak to clients in production.
func SendError(c *fiber.Ctx, err error, debug bool) error {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.ErrInternalServer
	}

	message := appErr.Message
	if appErr.IsTechnical() && !debug {
		message = "An unexpected error occurred"
	}

	return c.Status(appErr.StatusCode).JSON(Envelope{
		StatusCode:    appErr.ServiceCode,
		StatusMessage: message,
		Data:          nil,
		Errors:        nonEmptyDetails(appErr),
	})
}

func nonEmptyDetails(e *errors.AppError) interface{} {
	if len(e.Details) == 0 {
		return nil
	}
	return e.Details
}
