package handler

import (
	"log/slog"
	"net/http"

	"agenda/internal/delivery/api/response"
	"agenda/internal/domain/entity"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC      usecase.ProfileUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// ProfileHandler serves the local profile, settings and voice endpoints
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:      params.ProfileUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// LoginRequest represents the request body for the local login
type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required"`
}

// UpdateSettingsRequest replaces every notification setting at once
type UpdateSettingsRequest struct {
	VoiceEnabled     *bool  `json:"voice_enabled" validate:"required"`
	SoundEnabled     *bool  `json:"sound_enabled" validate:"required"`
	VibrationEnabled *bool  `json:"vibration_enabled" validate:"required"`
	VoiceLanguage    string `json:"voice_language"`
}

// Login handles creating or replacing the local profile
func (h *ProfileHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.profileUC.Login(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetProfile handles reading the local profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := h.profileUC.CurrentUser(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Reset handles wiping events, groups and the profile
func (h *ProfileHandler) Reset(c echo.Context) error {
	if err := h.profileUC.ResetAll(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "App has been reset")
}

// GetSettings handles reading notification settings
func (h *ProfileHandler) GetSettings(c echo.Context) error {
	settings, err := h.profileUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings handles replacing notification settings
func (h *ProfileHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	settings, err := h.profileUC.UpdateSettings(c.Request().Context(), &entity.NotificationSettings{
		VoiceEnabled:     *req.VoiceEnabled,
		SoundEnabled:     *req.SoundEnabled,
		VibrationEnabled: *req.VibrationEnabled,
		VoiceLanguage:    req.VoiceLanguage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// ListVoices handles listing speech voices, falling back to a fixed list
func (h *ProfileHandler) ListVoices(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notificationUC.VoicesOrFallback(c.Request().Context()))
}

// TestVoice handles speaking the sample message
func (h *ProfileHandler) TestVoice(c echo.Context) error {
	if err := h.notificationUC.TestVoice(c.Request().Context()); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Voice test failed", slog.Any("error", err))

		return response.InternalServerError(c, "VOICE_TEST_FAILED", "Failed to test voice notification")
	}

	return response.Message(c, http.StatusOK, "Voice test started")
}

// PendingNotifications handles listing notifications waiting to fire
func (h *ProfileHandler) PendingNotifications(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notificationUC.PendingNotifications(c.Request().Context()))
}
