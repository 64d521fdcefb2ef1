package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "cabinet/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() != 0 {
		m.write(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", err.Error())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, message, code, details string) {
	body := domainerrors.Response{
		Success: false,
		Code:    status,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    code,
			Details: details,
		},
	}

	if err := c.JSON(status, body); err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
