package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/memberapi/internal/app/models/dto"
)

// HandleBindingError writes a 400 for a failed ShouldBindUri/ShouldBindQuery.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(HandleValidationError(err)))
}

// HandleValidationError converts a binding or validation error into an error detail
func HandleValidationError(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Conversion failures ("abc" for an int64) never reach the validator. The
		// only bound parameter is the member id; parser text stays out of the body.
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "id must be a positive integer").
			WithSeverity(dto.ErrorSeverityWarning).
			WithField("id")
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, formatValidationError(e))
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, strings.Join(messages, "; ")).
		WithSeverity(dto.ErrorSeverityWarning)
	if len(verrs) == 1 {
		detail = detail.WithField(strings.ToLower(verrs[0].Field()))
	}
	return detail
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
