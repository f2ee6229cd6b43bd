package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agenda/config"
	"agenda/internal/delivery/api/response"
	"agenda/internal/delivery/api/router"
	"agenda/internal/delivery/api/router/handler"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	mockUC "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo           *echo.Echo
	eventUC        *mockUC.MockEventUsecase
	groupUC        *mockUC.MockGroupUsecase
	profileUC      *mockUC.MockProfileUsecase
	notificationUC *mockUC.MockNotificationUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Normalize()

	fx := serverFixtures{
		eventUC:        mockUC.NewMockEventUsecase(t),
		groupUC:        mockUC.NewMockGroupUsecase(t),
		profileUC:      mockUC.NewMockProfileUsecase(t),
		notificationUC: mockUC.NewMockNotificationUsecase(t),
	}

	fx.echo = newEcho(cfg, logger, router.RouterParams{
		EventHandler:   handler.NewEventHandler(handler.EventHandlerParams{EventUC: fx.eventUC, Logger: logger}),
		GroupHandler:   handler.NewGroupHandler(handler.GroupHandlerParams{GroupUC: fx.groupUC, Logger: logger}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: fx.profileUC, NotificationUC: fx.notificationUC, Logger: logger}),
	})

	return fx
}

func (fx serverFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_CreateEvent(t *testing.T) {
	fx := createTestServer(t)
	at := time.Date(2030, 1, 2, 15, 4, 0, 0, time.UTC)

	fx.eventUC.EXPECT().
		CreateEvent(mock.Anything, &usecase.CreateEventInput{Title: "Pay rent", Description: "Transfer", ScheduledFor: at}).
		Return(&entity.Event{ID: "e1", Title: "Pay rent", ScheduledFor: at}, nil)

	rec := fx.do(http.MethodPost, "/api/events", `{"title":"Pay rent","description":"Transfer","scheduled_for":"2030-01-02T15:04:00Z"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"e1"`)
	assert.Contains(t, rec.Body.String(), `Event \"Pay rent\" has been scheduled for`)
}

func TestServer_CreateEvent_DomainError(t *testing.T) {
	fx := createTestServer(t)

	fx.eventUC.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEventTitleRequired)

	rec := fx.do(http.MethodPost, "/api/events", `{"title":"","description":"d","scheduled_for":"2030-01-02T15:04:00Z"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "EVENT_TITLE_REQUIRED", body.Error.Code)
	assert.Equal(t, "Please enter an event title", body.Error.Message)
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.Meta.RequestID)
}

func TestServer_CreateEvent_MissingTime(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/api/events", `{"title":"t","description":"d"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "scheduledFor: is required")
}

func TestServer_ListEvents(t *testing.T) {
	fx := createTestServer(t)

	fx.eventUC.EXPECT().
		ListEvents(mock.Anything, mock.MatchedBy(func(day *time.Time) bool {
			return day != nil && day.Year() == 2024 && day.Month() == time.May && day.Day() == 1
		})).
		Return([]*entity.EventView{{Event: entity.Event{ID: "e1"}, Status: entity.StatusDue}}, nil)

	rec := fx.do(http.MethodGet, "/api/events?day=2024-05-01", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"due"`)

	rec = fx.do(http.MethodGet, "/api/events?day=May-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DAY")
}

func TestServer_CompleteAndDeleteEvent(t *testing.T) {
	fx := createTestServer(t)

	fx.eventUC.EXPECT().CompleteEvent(mock.Anything, "e1").Return(&entity.Event{ID: "e1", IsCompleted: true}, nil)
	fx.eventUC.EXPECT().CompleteEvent(mock.Anything, "missing").Return(nil, domainerrors.ErrEventNotFound)
	fx.eventUC.EXPECT().DeleteEvent(mock.Anything, "e1").Return(nil)

	rec := fx.do(http.MethodPost, "/api/events/e1/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_completed":true`)

	rec = fx.do(http.MethodPost, "/api/events/missing/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = fx.do(http.MethodDelete, "/api/events/e1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ExportCalendar(t *testing.T) {
	fx := createTestServer(t)

	fx.eventUC.EXPECT().ExportCalendar(mock.Anything).Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil)

	rec := fx.do(http.MethodGet, "/api/events/calendar.ics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "agenda.ics")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "BEGIN:VCALENDAR"))
}

func TestServer_Groups(t *testing.T) {
	fx := createTestServer(t)

	fx.groupUC.EXPECT().
		CreateGroup(mock.Anything, &usecase.CreateGroupInput{Name: "Team", MemberEmails: []string{"b@example.com"}}).
		Return(&entity.Group{ID: "g1", Name: "Team"}, nil)
	fx.groupUC.EXPECT().ListGroups(mock.Anything).Return([]*entity.Group{{ID: "g1"}}, nil)
	fx.groupUC.EXPECT().DeleteGroup(mock.Anything, "g1").Return(nil)

	rec := fx.do(http.MethodPost, "/api/groups", `{"name":"Team","member_emails":["b@example.com"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `created with 1 member(s)`)

	rec = fx.do(http.MethodGet, "/api/groups", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodDelete, "/api/groups/g1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ProfileAndSettings(t *testing.T) {
	fx := createTestServer(t)

	fx.profileUC.EXPECT().Login(mock.Anything, "Ada", "ada@example.com").Return(&entity.User{ID: "u1", Name: "Ada"}, nil)
	fx.profileUC.EXPECT().CurrentUser(mock.Anything).Return(nil, domainerrors.ErrUserNotFound)
	fx.profileUC.EXPECT().
		UpdateSettings(mock.Anything, &entity.NotificationSettings{VoiceEnabled: false, SoundEnabled: true, VibrationEnabled: true, VoiceLanguage: "fr-FR"}).
		Return(&entity.NotificationSettings{SoundEnabled: true, VibrationEnabled: true, VoiceLanguage: "fr-FR"}, nil)
	fx.profileUC.EXPECT().ResetAll(mock.Anything).Return(nil)

	rec := fx.do(http.MethodPost, "/api/profile", `{"name":"Ada","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User information not found")

	rec = fx.do(http.MethodPut, "/api/settings", `{"voice_enabled":false,"sound_enabled":true,"vibration_enabled":true,"voice_language":"fr-FR"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/api/settings", `{"voice_enabled":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodPost, "/api/reset", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Voices(t *testing.T) {
	fx := createTestServer(t)

	fx.notificationUC.EXPECT().VoicesOrFallback(mock.Anything).Return([]entity.Voice{{ID: "en-US", Language: "en-US"}})
	fx.notificationUC.EXPECT().TestVoice(mock.Anything).Return(nil)

	rec := fx.do(http.MethodGet, "/api/voices", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"language":"en-US"`)

	rec = fx.do(http.MethodPost, "/api/voices/test", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/api/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
