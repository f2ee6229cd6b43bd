// Package context carries a trace id, and a logger tagged with it, through
// HTTP requests and background notifier scans.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyTraceID contextKey = "trace_id"
	keyLogger  contextKey = "logger"

	// echo.Context key holding the id of the current request.
	echoKeyRequestID = "request_id"

	// HeaderXRequestID carries the request id in and out of the API.
	HeaderXRequestID = "X-Request-Id"

	// Log attribute names for the two kinds of trace.
	attrRequestID = "request_id"
	attrScanID    = "scan_id"
)

// RequestID returns the id stored on c by the request-id middleware.
// Handlers reached without the middleware get a fresh id.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// BindRequest stores requestID on c and returns a request context carrying it
// together with a logger derived from base.
func BindRequest(c echo.Context, requestID string, base *slog.Logger) context.Context {
	c.Set(echoKeyRequestID, requestID)

	return withTrace(c.Request().Context(), requestID, base.With(slog.String(attrRequestID, requestID)))
}

// StartScan returns a context for one notifier scan with a new scan id and a
// logger derived from base.
func StartScan(ctx context.Context, base *slog.Logger) context.Context {
	scanID := uuid.NewString()

	return withTrace(ctx, scanID, base.With(slog.String(attrScanID, scanID)))
}

// TraceID returns the request or scan id of ctx, or "" outside either.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(keyTraceID).(string)

	return id
}

// Logger returns the logger bound to ctx, or fallback when there is none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func withTrace(ctx context.Context, id string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyTraceID, id)

	return context.WithValue(ctx, keyLogger, logger)
}
