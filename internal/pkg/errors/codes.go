package errors

import "net/http"

// Service status codes returned in the response envelope. They are
// independent from HTTP statuses: the success band starts at 7000,
// client/domain failures live in the 8000 band and server failures in
// the 9000 band.
const (
	ServiceSuccess = 7000

	ServiceFailedOperation       = 8000
	ServiceFileFormatInvalid     = 8013
	ServiceFileExtensionInvalid  = 8014
	ServiceResourceNotFound      = 8016
	ServiceValidationError       = 8017
	ServiceResourceAlreadyExists = 8019
	ServiceDuplicateResource     = 8021
	ServiceDataInvalid           = 8026
	ServiceDeleteFailed          = 8999

	ServiceServerError = 9000
)

var (
	ErrSiteNotFound = New(
		"SITE_NOT_FOUND",
		"Site not found",
		http.StatusNotFound,
		ServiceResourceNotFound,
	)

	ErrSiteTypeNotFound = New(
		"SITE_TYPE_NOT_FOUND",
		"Site type not found",
		http.StatusNotFound,
		ServiceResourceNotFound,
	)

	ErrResourceNotFound = New(
		"RESOURCE_NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
		ServiceResourceNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Latitude must be within [-90, 90] and longitude within [-180, 180]",
		http.StatusBadRequest,
		ServiceFailedOperation,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Radius must be a positive number of kilometers",
		http.StatusBadRequest,
		ServiceFailedOperation,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request data",
		http.StatusUnprocessableEntity,
		ServiceDataInvalid,
	)

	ErrDuplicateSiteTypeCode = New(
		"DUPLICATE_SITE_TYPE_CODE",
		"A site type with this code already exists",
		http.StatusConflict,
		ServiceDuplicateResource,
	)

	ErrUnsupportedFileType = New(
		"UNSUPPORTED_FILE_TYPE",
		"Only jpeg, jpg, png and webp images are accepted",
		http.StatusUnprocessableEntity,
		ServiceFileExtensionInvalid,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
		ServiceServerError,
	)

	ErrFileStorageError = New(
		"FILE_STORAGE_ERROR",
		"File storage operation failed",
		http.StatusInternalServerError,
		ServiceServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
		ServiceServerError,
	)
)
