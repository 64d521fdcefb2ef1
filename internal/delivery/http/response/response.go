// Package response writes the bodies of the account contract.
package response

import (
	"net/http"

	domainerrors "cabinet/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OK writes body as a bare JSON document, the way the account contract expects.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError writes a 400 for bodies that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}
