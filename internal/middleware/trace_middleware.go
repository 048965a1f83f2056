package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dewaterRecommender/business/recommender"
)

const TraceIDHeader = "X-Trace-Id"

// TraceID attaches a per-request trace id to the request context so the
// recommender's debug logs can be correlated, and echoes it back to the
// caller.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := recommender.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}
