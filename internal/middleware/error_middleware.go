package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studymate/courseapi/internal/app/models/dto"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
	"github.com/studymate/courseapi/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps service errors onto HTTP responses. It is the only place
// where error kinds turn into status codes.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUpstreamFailure):
		// Store and provider failures on the chat path share one response shape
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Upstream failure")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, err.Error()),
		))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()).WithSeverity(dto.ErrorSeverityWarning),
		))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrDatabaseFailure):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Database failure")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Internal server error").WithSeverity(dto.ErrorSeverityCritical),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
