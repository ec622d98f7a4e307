package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swms/internal/repository"
	"swms/internal/service"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GatewayErrorResponse is the error envelope used by the payment endpoints.
// Shape matches what the checkout frontend expects.
type GatewayErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMissingVerificationParams),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidClassification),
		errors.Is(err, service.ErrInvalidQuizResult):
		return http.StatusBadRequest

	// Verification mismatch is an expected outcome, reported as client error.
	case errors.Is(err, service.ErrVerificationFailed):
		return http.StatusBadRequest

	// Auth errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Conflict errors
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
