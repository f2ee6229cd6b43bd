package clock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// CronSchedulerParams holds dependencies for the cron scheduler, injected by Fx.
type CronSchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

type cronScheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCronScheduler builds a TaskScheduler on robfig/cron, started and stopped with the app.
func NewCronScheduler(params CronSchedulerParams) service.TaskScheduler {
	s := newCronScheduler(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.cron.Start()

			return nil
		},
		OnStop: s.stop,
	})

	return s
}

func newCronScheduler(logger *slog.Logger) *cronScheduler {
	cronLogger := &slogCronLogger{logger: logger.With(slog.String("component", "cron"))}

	return &cronScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

// Every registers task to run every interval. Intervals under one second run every second.
// The task's context is cancelled when the returned handle is stopped.
func (s *cronScheduler) Every(interval time.Duration, task func(ctx context.Context)) (service.TaskHandle, error) {
	if interval <= 0 {
		return nil, errors.Errorf("invalid task interval: %s", interval)
	}

	ctx, cancel := context.WithCancel(context.Background())
	id, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		task(ctx)
	})
	if err != nil {
		cancel()

		return nil, errors.Wrap(err, "failed to register recurring task")
	}

	return &cronHandle{
		stop: func() {
			cancel()
			s.cron.Remove(id)
		},
	}, nil
}

func (s *cronScheduler) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		s.logger.Warn("Timed out waiting for running tasks")

		return errors.WithStack(stopCtx.Err())
	}
}

type cronHandle struct {
	once sync.Once
	stop func()
}

func (h *cronHandle) Stop() {
	h.once.Do(h.stop)
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
