package speech

import (
	"context"
	"log/slog"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"
)

// logEngine writes what would be spoken to the log. Used in development and tests.
type logEngine struct {
	voiceSettings
	logger *slog.Logger
}

// NewLogEngine returns a speech engine that only logs.
func NewLogEngine(language string, rate, pitch float64, logger *slog.Logger) service.SpeechEngine {
	return &logEngine{
		voiceSettings: newVoiceSettings(language, rate, pitch),
		logger:        logger.With(slog.String("component", "speech")),
	}
}

func (e *logEngine) Speak(ctx context.Context, text string) error {
	language, rate, pitch := e.snapshot()
	e.logger.InfoContext(ctx, "Speaking",
		slog.String("language", language),
		slog.Float64("rate", rate),
		slog.Float64("pitch", pitch),
		slog.String("text", text),
	)

	return nil
}

func (e *logEngine) Stop() error {
	return nil
}

func (e *logEngine) Voices(context.Context) ([]entity.Voice, error) {
	language, _, _ := e.snapshot()

	return []entity.Voice{{ID: language, Name: "log", Language: language}}, nil
}
