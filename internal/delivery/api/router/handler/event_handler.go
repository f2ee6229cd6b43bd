package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"agenda/internal/delivery/api/response"
	"agenda/internal/domain/entity"
	"agenda/internal/usecase"
	"agenda/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const calendarContentType = "text/calendar; charset=utf-8"

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for event-related handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest represents the request body for creating an event.
// Title and description are checked by the use case so users see its messages.
type CreateEventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ScheduledFor time.Time `json:"scheduled_for" validate:"required"`
	GroupID      string    `json:"group_id"`
}

// CreateEventResponse is the created event plus a confirmation line
type CreateEventResponse struct {
	Event   *entity.Event `json:"event"`
	Message string        `json:"message"`
}

// CreateEvent handles event creation
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		ScheduledFor: req.ScheduledFor,
		GroupID:      req.GroupID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateEventResponse{
		Event:   event,
		Message: fmt.Sprintf(`Event "%s" has been scheduled for %s`, event.Title, util.FormatDateTime(event.ScheduledFor)),
	})
}

// ListEvents handles listing events, optionally for one day (?day=YYYY-MM-DD)
func (h *EventHandler) ListEvents(c echo.Context) error {
	var day *time.Time
	if value := c.QueryParam("day"); value != "" {
		parsed, err := util.ParseDay(value, time.Local)
		if err != nil {
			return response.BadRequest(c, "INVALID_DAY", "Day must be formatted as YYYY-MM-DD")
		}
		day = &parsed
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// CompleteEvent handles marking an event completed
func (h *EventHandler) CompleteEvent(c echo.Context) error {
	event, err := h.eventUC.CompleteEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// DeleteEvent handles event removal
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.eventUC.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Event deleted successfully")
}

// ExportCalendar serves every event as an iCalendar file
func (h *EventHandler) ExportCalendar(c echo.Context) error {
	doc, err := h.eventUC.ExportCalendar(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="agenda.ics"`)

	return c.Blob(http.StatusOK, calendarContentType, doc)
}
