package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug
// mode only failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// the error handler has not written the response yet
			status = statusOf(err)
		}

		if m.debug || status >= 400 {
			m.logRequest(c, status, time.Since(start), err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.RequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
