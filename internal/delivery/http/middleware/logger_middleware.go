package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "coach/internal/delivery/context"
)

// LoggerMiddleware attaches a request-scoped logger to each request context.
type LoggerMiddleware struct {
	logger *slog.Logger
}

// LoggerMiddlewareParams holds dependencies for LoggerMiddleware, injected by Fx.
type LoggerMiddlewareParams struct {
	fx.In

	Logger *slog.Logger
}

// NewLoggerMiddleware is the constructor for LoggerMiddleware.
func NewLoggerMiddleware(params LoggerMiddlewareParams) *LoggerMiddleware {
	return &LoggerMiddleware{logger: params.Logger}
}

// Handle tags every request with an ID and stores a logger carrying that ID
// in the request context, so log lines from the use cases can be correlated
// back to the request that triggered them.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
