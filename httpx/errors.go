package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/scheduler"
	"clinic-scheduler/store"
)

// ErrorResponse is the standardized error payload for every endpoint.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeStorageError     = "STORAGE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, errorCode, errorMessage, detailedMessage string, details interface{}) {
	response := ErrorResponse{
		Error:   errorMessage,
		Message: detailedMessage,
		Code:    errorCode,
	}
	if details != nil {
		response.Details = details
	}
	c.JSON(statusCode, response)
}

// SendValidationError sends a validation error response.
func SendValidationError(c *gin.Context, message string, details interface{}) {
	SendError(c, http.StatusBadRequest, CodeValidationError, "Validation failed", message, details)
}

// SendNotFoundError sends a not found error response.
func SendNotFoundError(c *gin.Context, resource string) {
	SendError(c, http.StatusNotFound, CodeResourceNotFound, "Resource not found",
		"The requested "+resource+" was not found", nil)
}

// SendStorageError sends a storage failure response.
func SendStorageError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, CodeStorageError, "Storage error",
		message, nil)
}

// MapError translates a core scheduler error into the matching HTTP
// response. Unrecognized errors become a 500 so nothing is swallowed.
func MapError(c *gin.Context, err error) {
	var verr *scheduler.ValidationError
	if errors.As(err, &verr) {
		SendValidationError(c, verr.Error(), gin.H{"field": verr.Field})
		return
	}
	var nferr *scheduler.NotFoundError
	if errors.As(err, &nferr) {
		SendNotFoundError(c, nferr.Resource)
		return
	}
	var serr *store.StorageError
	if errors.As(err, &serr) {
		SendStorageError(c, "The operation could not be persisted")
		return
	}
	SendError(c, http.StatusInternalServerError, CodeInternalError, "Internal error",
		"An unexpected error occurred", nil)
}
