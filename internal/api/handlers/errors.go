package handlers

import (
	"net/http"
	"strconv"

	apperrors "product-catalog-backend/internal/errors"
	"product-catalog-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"product 7 not found"`
}

// writeError maps typed errors onto status codes. Unexpected errors are
// logged and answered with a generic message.
func writeError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConstraintViolation(err), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func outcome(err error) string {
	switch {
	case apperrors.IsNotFound(err):
		return outcomeNotFound
	case apperrors.IsConstraintViolation(err), apperrors.IsValidation(err):
		return outcomeRejected
	default:
		return outcomeError
	}
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		if name == "id" {
			return 0, apperrors.ErrInvalidID
		}
		return 0, apperrors.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// actor names the caller in audit fields. The X-User header is trusted as-is.
func actor(c *gin.Context) string {
	return c.GetHeader("X-User")
}
