package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/internal/delivery/api/response"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantDetail any
	}{
		{
			name:       "domain validation error",
			err:        errors.Wrap(domainerrors.ErrEventTitleRequired, "create event"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "EVENT_TITLE_REQUIRED",
			wantMsg:    "Please enter an event title",
		},
		{
			name:       "domain error with details",
			err:        domainerrors.ErrInvalidEmail.WithDetails("bob@"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_EMAIL",
			wantMsg:    "Please enter a valid email address",
			wantDetail: "bob@",
		},
		{
			name:       "storage error hides details",
			err:        domainerrors.NewStorageError(errors.New("disk full"), "events"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORAGE_WRITE_FAILED",
			wantMsg:    "Failed to save data",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "Not Found",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/events", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.Equal(t, tt.wantDetail, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
