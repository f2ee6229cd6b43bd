package notification

import (
	"context"
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/constants"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"go.uber.org/fx"
)

// PushParams holds dependencies for the push service, injected by Fx.
type PushParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushService selects the push service named by notification.provider.
func NewPushService(params PushParams) (service.PushService, error) {
	switch params.Config.Notification.Provider {
	case constants.NotificationProviderLog:
		return NewLogService(params.Logger), nil

	case constants.NotificationProviderFirebase:
		fb := params.Config.Firebase
		if fb.CredentialsPath == "" {
			return nil, errors.New("firebase.credentialsPath is required for the firebase provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		return NewFirebaseService(ctx, fb.CredentialsPath, fb.ProjectID, fb.DeviceTokens, params.Logger)

	default:
		return nil, errors.Errorf("unsupported notification provider: %s", params.Config.Notification.Provider)
	}
}

// SchedulerParams holds dependencies for the local scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Push   service.PushService
	Logger *slog.Logger
}

// NewLocalScheduler returns the in-process notification scheduler; pending timers are dropped on stop.
func NewLocalScheduler(params SchedulerParams) service.NotificationScheduler {
	s := newLocalScheduler(params.Push, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}
