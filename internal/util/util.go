package util

import (
	"fmt"
	"strings"
	"time"

	"agenda/internal/errors"
)

// DayLayout is the query format of a calendar day.
const DayLayout = "2006-01-02"

// FormatDateTime renders t like "Mar 14, 2026, 09:30 AM".
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// ParseDay parses a YYYY-MM-DD day as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day %q", value)
	}

	return day, nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
