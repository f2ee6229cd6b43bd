package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"agenda/config"
	mockSvc "agenda/internal/mocks/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Normalize()

	return cfg
}

// newFixedClock returns a clock mock that always reports now.
func newFixedClock(t *testing.T, now time.Time) *mockSvc.MockClock {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()

	return clock
}
