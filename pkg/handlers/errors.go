package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/carousel"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/logger"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/response"
)

// Common error type definitions
var (
	// ErrInvalidParam indicates invalid parameter error
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrResourceNotFound indicates resource not found error
	ErrResourceNotFound = errors.New("resource not found")

	// ErrServiceUnavailable indicates service unavailable error
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInternalServer indicates internal server error
	ErrInternalServer = errors.New("internal server error")
)

// APIError represents a custom API error structure
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API Error (Code: %d, Message: %s): %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("API Error (Code: %d, Message: %s)", e.Code, e.Message)
}

// Unwrap supports error wrapping
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(code int, message string, err error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, err error) *APIError {
	return NewAPIError(http.StatusBadRequest, message, err)
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(message string, err error) *APIError {
	return NewAPIError(http.StatusNotFound, message, err)
}

// HandleError writes err as a JSON error envelope
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		response.Fail(c, apiErr.Code, apiErr.Message, apiErr.Err)
		return
	}

	switch {
	case errors.Is(err, ErrInvalidParam):
		response.Fail(c, http.StatusBadRequest, "Invalid parameter", err)
	case errors.Is(err, ErrResourceNotFound),
		errors.Is(err, pages.ErrPageNotFound),
		errors.Is(err, carousel.ErrUnknownSet),
		errors.Is(err, leadform.ErrUnknownKind):
		response.Fail(c, http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, ErrServiceUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, "Service unavailable", err)
	default:
		logger.Error("Unexpected error occurred",
			zap.Error(err),
			zap.String("request_id", logger.RequestIDFrom(c.Request.Context())))
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
