package service

import (
	"context"

	"agenda/internal/domain/entity"
)

// SpeechEngine is the platform's text-to-speech engine.
type SpeechEngine interface {
	SetLanguage(tag string) error
	SetRate(rate float64) error
	SetPitch(pitch float64) error

	// Speak starts speaking text and returns without waiting for playback to end.
	Speak(ctx context.Context, text string) error

	// Stop interrupts any speech in progress.
	Stop() error

	// Voices lists the voices the engine can use.
	Voices(ctx context.Context) ([]entity.Voice, error)
}
