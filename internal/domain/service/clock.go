package service

import (
	"context"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// TaskHandle controls a recurring task started by a TaskScheduler.
type TaskHandle interface {
	// Stop prevents future runs. Calling it more than once is a no-op.
	Stop()
}

// TaskScheduler runs a task repeatedly at a fixed interval.
type TaskScheduler interface {
	Every(interval time.Duration, task func(ctx context.Context)) (TaskHandle, error)
}
