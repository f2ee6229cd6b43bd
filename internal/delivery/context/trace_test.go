package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	ctx := BindRequest(c, "req-1", base)

	assert.Equal(t, "req-1", RequestID(c))
	assert.Equal(t, "req-1", TraceID(ctx))

	Logger(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestRequestID_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, RequestID(c))
}

func TestStartScan(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	first := StartScan(context.Background(), base)
	second := StartScan(context.Background(), base)

	require.NotEmpty(t, TraceID(first))
	assert.NotEqual(t, TraceID(first), TraceID(second))

	Logger(first, nil).Info("scan")
	assert.Contains(t, buf.String(), "scan_id="+TraceID(first))
}

func TestLogger_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Empty(t, TraceID(context.Background()))
}
