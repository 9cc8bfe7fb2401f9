package errors

import (
	"fmt"
)

// AppError carries everything a handler needs to build an error response:
// a stable machine code, a client-safe message, the HTTP status and the
// service status code returned in the response envelope.
type AppError struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Details     map[string]interface{} `json:"details,omitempty"`
	StatusCode  int                    `json:"-"`
	ServiceCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode, serviceCode int) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		StatusCode:  statusCode,
		ServiceCode: serviceCode,
	}
}

// WithDetails returns a copy of the error carrying extra context. Sentinel
// errors are shared across requests and must never be mutated in place.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithMessage returns a copy of the error with a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// IsDomain reports whether the error is a business-rule violation, as
// opposed to malformed input or a technical failure.
func (e *AppError) IsDomain() bool {
	return e.ServiceCode >= 8000 && e.ServiceCode < 9000 && e.StatusCode < 500
}

// IsTechnical reports whether the error comes from infrastructure
// (database, blob store). Messages of technical errors are suppressed
// outside debug mode.
func (e *AppError) IsTechnical() bool {
	return e.ServiceCode >= 9000
}
