package model

import "time"

// EventRecord is the persisted JSON layout of one event.
type EventRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ScheduledFor     time.Time `json:"scheduledFor"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	GroupID          string    `json:"groupId"`
	IsCompleted      bool      `json:"isCompleted"`
	NotificationSent bool      `json:"notificationSent"`
}

// GroupRecord is the persisted JSON layout of one group.
type GroupRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	Members   []string  `json:"members"`
}

// UserRecord is the persisted JSON layout of the local profile.
type UserRecord struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Groups []string `json:"groups"`
}

// SettingsRecord is the persisted JSON layout of the notification settings.
type SettingsRecord struct {
	VoiceEnabled     bool   `json:"voiceEnabled"`
	SoundEnabled     bool   `json:"soundEnabled"`
	VibrationEnabled bool   `json:"vibrationEnabled"`
	VoiceLanguage    string `json:"voiceLanguage"`
}
