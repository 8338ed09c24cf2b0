package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader = "X-Trace-ID"

	// TraceIDContextKey is where handlers and the error envelope look up
	// the trace ID for the current request.
	TraceIDContextKey = "trace_id"
)

// RequestID attaches a trace ID to every request. An incoming X-Trace-ID
// is propagated so callers can correlate across services; otherwise a
// fresh UUID is generated. The ID is echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" when the RequestID
// middleware did not run.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
