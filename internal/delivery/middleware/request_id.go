package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "cabinet/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Client supplied IDs are reused only when they look like an ID; anything else is replaced.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestIDMiddleware tags every request with an ID and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process echoes the request ID back and stores a request-scoped logger carrying it,
// the method and the route.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !requestIDPattern.MatchString(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		logger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// TagAccount records the authenticated account and adds it to the request-scoped logger.
func TagAccount(c echo.Context, guid string) {
	deliverycontext.SetAccountGUID(c, guid)

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).With(slog.String("account_guid", guid))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
}
