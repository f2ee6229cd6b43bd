// Package clock supplies wall-clock time and the recurring task scheduler.
package clock

import (
	"time"

	"agenda/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
