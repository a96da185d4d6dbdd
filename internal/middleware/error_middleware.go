package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberapi/internal/app/models/dto"
	"github.com/yigit/memberapi/internal/pkg/apperrors"
	"github.com/yigit/memberapi/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			detailFor(err, dto.ErrorCodeResourceNotFound, "Resource not found"),
		))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			detailFor(err, dto.ErrorCodeValidationFailed, "Validation failed").
				WithSeverity(dto.ErrorSeverityWarning),
		))
	case errors.Is(err, apperrors.ErrDatabaseUnavailable):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Database unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unavailable").
				WithSeverity(dto.ErrorSeverityCritical),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// detailFor builds the error detail from the first CustomError in the chain,
// falling back to code and message for fields it leaves empty.
func detailFor(err error, code dto.ErrorCode, message string) *dto.ErrorDetail {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Code != "" {
			code = dto.ErrorCode(custom.Code)
		}
		if custom.Message != "" {
			message = custom.Message
		}
	}
	return dto.NewErrorDetail(code, message)
}
