package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"google.golang.org/api/option"
	"google.golang.org/api/texttospeech/v1"
)

// Cloud Text-to-Speech takes speakingRate in [0.25, 4] with 1 as normal and
// pitch in semitones [-20, 20] with 0 as normal.
const (
	cloudRatePerRate       = 2
	cloudSemitonesPerPitch = 20
)

type synthesizer interface {
	Synthesize(ctx context.Context, request *texttospeech.SynthesizeSpeechRequest) (*texttospeech.SynthesizeSpeechResponse, error)
	ListVoices(ctx context.Context, language string) ([]*texttospeech.Voice, error)
}

type cloudSynthesizer struct {
	svc *texttospeech.Service
}

func (s *cloudSynthesizer) Synthesize(ctx context.Context, request *texttospeech.SynthesizeSpeechRequest) (*texttospeech.SynthesizeSpeechResponse, error) {
	return s.svc.Text.Synthesize(request).Context(ctx).Do()
}

func (s *cloudSynthesizer) ListVoices(ctx context.Context, language string) ([]*texttospeech.Voice, error) {
	call := s.svc.Voices.List().Context(ctx)
	if language != "" {
		call = call.LanguageCode(language)
	}

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	return response.Voices, nil
}

// GoogleEngine synthesizes MP3 clips with Cloud Text-to-Speech and drops them
// into a bucket for the playback side to pick up.
type GoogleEngine struct {
	voiceSettings
	client synthesizer
	bucket *blob.Bucket
	logger *slog.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	inFlight sync.WaitGroup
}

// NewGoogleEngine dials Cloud Text-to-Speech and opens the clip bucket.
func NewGoogleEngine(ctx context.Context, credentialsPath, bucketURL, language string, rate, pitch float64, logger *slog.Logger) (*GoogleEngine, error) {
	opts := make([]option.ClientOption, 0, 1)
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create text-to-speech client")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open speech output bucket %q", bucketURL)
	}

	return newGoogleEngine(&cloudSynthesizer{svc: svc}, bucket, language, rate, pitch, logger), nil
}

func newGoogleEngine(client synthesizer, bucket *blob.Bucket, language string, rate, pitch float64, logger *slog.Logger) *GoogleEngine {
	return &GoogleEngine{
		voiceSettings: newVoiceSettings(language, rate, pitch),
		client:        client,
		bucket:        bucket,
		logger:        logger.With(slog.String("component", "speech")),
	}
}

// Speak synthesizes text in the background. A later Speak or Stop cancels it.
func (e *GoogleEngine) Speak(ctx context.Context, text string) error {
	language, rate, pitch := e.snapshot()
	request := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{LanguageCode: language},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  rate * cloudRatePerRate,
			Pitch:         (pitch - 1) * cloudSemitonesPerPitch,
		},
	}

	speakCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.cancel = cancel
	e.mu.Unlock()

	e.inFlight.Add(1)
	go func() {
		defer e.inFlight.Done()
		defer cancel()

		key, err := e.synthesize(speakCtx, request)
		if err != nil {
			e.logger.ErrorContext(speakCtx, "Failed to synthesize speech", slog.Any("error", err))

			return
		}
		e.logger.InfoContext(speakCtx, "Speech clip written", slog.String("key", key), slog.String("language", language))
	}()

	return nil
}

func (e *GoogleEngine) synthesize(ctx context.Context, request *texttospeech.SynthesizeSpeechRequest) (string, error) {
	response, err := e.client.Synthesize(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "failed to synthesize speech")
	}

	audio, err := base64.StdEncoding.DecodeString(response.AudioContent)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode synthesized audio")
	}

	key := fmt.Sprintf("clips/%s-%s.mp3", time.Now().UTC().Format("20060102T150405"), uuid.NewString())
	if err := e.bucket.WriteAll(ctx, key, audio, &blob.WriterOptions{ContentType: "audio/mpeg"}); err != nil {
		return "", errors.Wrapf(err, "failed to write speech clip %s", key)
	}

	return key, nil
}

// Stop cancels the synthesis in progress.
func (e *GoogleEngine) Stop() error {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.mu.Unlock()

	return nil
}

func (e *GoogleEngine) Voices(ctx context.Context) ([]entity.Voice, error) {
	cloudVoices, err := e.client.ListVoices(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list text-to-speech voices")
	}

	voices := make([]entity.Voice, 0, len(cloudVoices))
	for _, v := range cloudVoices {
		language := ""
		if len(v.LanguageCodes) > 0 {
			language = v.LanguageCodes[0]
		}
		voices = append(voices, entity.Voice{ID: v.Name, Name: v.Name, Language: language})
	}

	return voices, nil
}

// close waits for running synthesis and releases the bucket.
func (e *GoogleEngine) close() error {
	_ = e.Stop()
	e.inFlight.Wait()

	return e.bucket.Close()
}
