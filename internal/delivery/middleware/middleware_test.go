package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	var scoped *slog.Logger
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		fromCtx = deliverycontext.TraceID(c.Request().Context())
		scoped = deliverycontext.Logger(c.Request().Context(), nil)

		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, fromCtx)
	assert.Equal(t, fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, fromCtx, deliverycontext.RequestID(c))
	assert.NotNil(t, scoped)
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:    "quiet success outside debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "success in debug",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: "level=INFO",
		},
		{
			name:    "app error is a warning",
			handler: func(echo.Context) error { return domainerrors.ErrEventNotFound },
			wantLog: "status=404",
		},
		{
			name:    "unknown error is an error",
			handler: func(echo.Context) error { return assert.AnError },
			wantLog: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/events?day=2024-05-01", nil), httptest.NewRecorder())

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "day=2024-05-01")
		})
	}
}
