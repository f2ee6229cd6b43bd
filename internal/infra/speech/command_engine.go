package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strings"
	"sync"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
)

const (
	// espeak-ng speaks 175 words per minute by default, which maps to rate 0.5.
	wordsPerMinutePerRate = 350
	// espeak-ng pitch runs 0..99 with 50 as normal, which maps to pitch 1.0.
	pitchUnitsPerPitch = 50
)

// commandEngine speaks through a local espeak-ng compatible binary.
type commandEngine struct {
	voiceSettings
	command string
	logger  *slog.Logger

	mu      sync.Mutex
	current *exec.Cmd
}

// NewCommandEngine returns a speech engine that runs command for every utterance.
func NewCommandEngine(command, language string, rate, pitch float64, logger *slog.Logger) service.SpeechEngine {
	return newCommandEngine(command, language, rate, pitch, logger)
}

func newCommandEngine(command, language string, rate, pitch float64, logger *slog.Logger) *commandEngine {
	return &commandEngine{
		voiceSettings: newVoiceSettings(language, rate, pitch),
		command:       command,
		logger:        logger.With(slog.String("component", "speech")),
	}
}

// Speak starts the binary and returns once it is running.
func (e *commandEngine) Speak(ctx context.Context, text string) error {
	cmd := exec.Command(e.command, e.args(text)...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", e.command)
	}

	e.mu.Lock()
	e.current = cmd
	e.mu.Unlock()

	go func() {
		if err := cmd.Wait(); err != nil {
			e.logger.DebugContext(ctx, "Speech process exited", slog.Any("error", err))
		}

		e.mu.Lock()
		if e.current == cmd {
			e.current = nil
		}
		e.mu.Unlock()
	}()

	return nil
}

// Stop kills the utterance in progress, if any.
func (e *commandEngine) Stop() error {
	e.mu.Lock()
	cmd := e.current
	e.current = nil
	e.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !strings.Contains(err.Error(), "process already finished") {
		return errors.Wrap(err, "failed to stop speech")
	}

	return nil
}

func (e *commandEngine) Voices(ctx context.Context) ([]entity.Voice, error) {
	out, err := exec.CommandContext(ctx, e.command, "--voices").Output()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list voices from %s", e.command)
	}

	return parseVoices(out), nil
}

func (e *commandEngine) args(text string) []string {
	language, rate, pitch := e.snapshot()

	return []string{
		"-v", language,
		"-s", fmt.Sprint(int(math.Round(rate * wordsPerMinutePerRate))),
		"-p", fmt.Sprint(int(math.Round(pitch * pitchUnitsPerPitch))),
		text,
	}
}

// parseVoices reads the table printed by `espeak-ng --voices`:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US            (en 3)
func parseVoices(out []byte) []entity.Voice {
	voices := make([]entity.Voice, 0)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 || fields[0] == "Pty" {
			continue
		}

		voices = append(voices, entity.Voice{
			ID:       fields[4],
			Name:     strings.ReplaceAll(fields[3], "_", " "),
			Language: fields[1],
		})
	}

	return voices
}
