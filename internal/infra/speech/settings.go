// Package speech provides the text-to-speech engines behind the notification gateway.
package speech

import (
	"sync"

	"agenda/internal/errors"
)

// voiceSettings carries the language, rate and pitch shared by every engine.
// Rate and pitch use the 0..2 scale where 1.0 is the engine's normal value
// for pitch and 0.5 is a normal speaking rate.
type voiceSettings struct {
	mu       sync.RWMutex
	language string
	rate     float64
	pitch    float64
}

func newVoiceSettings(language string, rate, pitch float64) voiceSettings {
	return voiceSettings{language: language, rate: rate, pitch: pitch}
}

func (v *voiceSettings) SetLanguage(tag string) error {
	if tag == "" {
		return errors.New("speech language is required")
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.language = tag

	return nil
}

func (v *voiceSettings) SetRate(rate float64) error {
	if rate <= 0 || rate > 2 {
		return errors.Errorf("speech rate %.2f out of range (0, 2]", rate)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.rate = rate

	return nil
}

func (v *voiceSettings) SetPitch(pitch float64) error {
	if pitch <= 0 || pitch > 2 {
		return errors.Errorf("speech pitch %.2f out of range (0, 2]", pitch)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.pitch = pitch

	return nil
}

func (v *voiceSettings) snapshot() (language string, rate, pitch float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.language, v.rate, v.pitch
}
