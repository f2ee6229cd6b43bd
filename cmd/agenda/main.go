package main

import (
	"context"
	"log/slog"
	"os"

	"agenda/config"
	"agenda/internal/delivery"
	"agenda/internal/delivery/api"
	"agenda/internal/delivery/api/router/handler"
	"agenda/internal/delivery/worker"
	"agenda/internal/infra/calendar"
	"agenda/internal/infra/clock"
	logs "agenda/internal/infra/log"
	"agenda/internal/infra/notification"
	"agenda/internal/infra/persistence/backend"
	"agenda/internal/infra/persistence/store"
	"agenda/internal/infra/speech"
	"agenda/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		backend.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewEventRepository,
			store.NewGroupRepository,
			store.NewUserRepository,
			store.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewSystemClock,
			clock.NewCronScheduler,
			notification.NewPushService,
			notification.NewLocalScheduler,
			speech.New,
			calendar.NewExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewEventService,
			impl.NewGroupService,
			impl.NewProfileService,
			impl.NewReminderService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
			handler.NewGroupHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
