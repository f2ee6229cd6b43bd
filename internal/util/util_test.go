package util

import (
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		format   func(time.Time) string
		expected string
	}{
		{name: "date and time", format: FormatDateTime, expected: "Mar 14, 2026, 09:30 AM"},
		{name: "afternoon", format: func(t time.Time) string { return FormatDateTime(t.Add(8 * time.Hour)) }, expected: "Mar 14, 2026, 05:30 PM"},
		{name: "next day", format: func(t time.Time) string { return FormatDateTime(t.AddDate(0, 0, 1)) }, expected: "Mar 15, 2026, 09:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.format(at); got != tt.expected {
				t.Fatalf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+8", 8*3600)
	day, err := ParseDay(" 2026-03-14 ", loc)
	if err != nil {
		t.Fatalf("ParseDay returned error: %v", err)
	}
	if want := time.Date(2026, 3, 14, 0, 0, 0, 0, loc); !day.Equal(want) {
		t.Fatalf("ParseDay = %s, want %s", day, want)
	}

	if _, err := ParseDay("14/03/2026", loc); err == nil {
		t.Fatal("expected error for non ISO day")
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  Ada@Example.COM "); got != "ada@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
