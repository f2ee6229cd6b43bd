package speech

import (
	"context"
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/constants"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for the speech engine, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the speech engine named by speech.provider and stops it on shutdown.
func New(params Params) (service.SpeechEngine, error) {
	cfg := params.Config.Speech

	switch cfg.Provider {
	case constants.SpeechProviderLog:
		engine := NewLogEngine(cfg.Language, cfg.Rate, cfg.Pitch, params.Logger)
		params.Lc.Append(fx.StopHook(engine.Stop))

		return engine, nil

	case constants.SpeechProviderCommand:
		engine := NewCommandEngine(cfg.Command, cfg.Language, cfg.Rate, cfg.Pitch, params.Logger)
		params.Lc.Append(fx.StopHook(engine.Stop))

		return engine, nil

	case constants.SpeechProviderGoogle:
		if cfg.OutputBucketURL == "" {
			return nil, errors.New("speech.outputBucketUrl is required for the google provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		engine, err := NewGoogleEngine(ctx, cfg.CredentialsPath, cfg.OutputBucketURL, cfg.Language, cfg.Rate, cfg.Pitch, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.StopHook(engine.close))

		return engine, nil

	default:
		return nil, errors.Errorf("unsupported speech provider: %s", cfg.Provider)
	}
}
