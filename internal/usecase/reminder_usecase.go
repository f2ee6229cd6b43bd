package usecase

import (
	"context"

	"agenda/internal/domain/service"
)

// ScanResult summarizes one pass of the due-event notifier
type ScanResult struct {
	ScanID   string `json:"scan_id"`  // Trace id of the scan, empty when run outside a scheduled tick
	Checked  int    `json:"checked"`  // Events read from the store
	Due      int    `json:"due"`      // Events selected for announcement
	Notified int    `json:"notified"` // Events announced and flagged
	Failed   int    `json:"failed"`   // Events whose announcement or write-back failed
}

// ReminderUsecase announces events as they become due
type ReminderUsecase interface {
	// ScanOnce announces every pending due event once
	ScanOnce(ctx context.Context) (*ScanResult, error)

	// Start runs ScanOnce on the configured interval until the handle is stopped
	Start(ctx context.Context) (service.TaskHandle, error)
}
