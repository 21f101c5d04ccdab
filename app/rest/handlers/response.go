package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "news-service/app/utils/errors"
	"news-service/app/utils/validator"
)

// ErrorResponse is the error payload shape for every endpoint.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondError maps an error onto the uniform error payload. Validation
// errors carry their per-field messages; unknown errors collapse to 500
// without leaking internals.
func respondError(c echo.Context, err error) error {
	if verr, ok := err.(*validator.ValidationError); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Code:   string(apperrors.ErrCodeValidationFailed),
			Fields: verr.Errors,
		})
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  string(apperrors.ErrCodeInternalError),
	})
}
