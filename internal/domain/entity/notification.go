package entity

import "time"

// NotificationChannelID is the single platform channel used for every alert.
const NotificationChannelID = "scheduling-app-channel"

// NotificationContent is what a local notification displays.
type NotificationContent struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// NotificationOptions controls how a notification is presented.
type NotificationOptions struct {
	Sound     bool   `json:"sound"`
	Vibrate   bool   `json:"vibrate"`
	ChannelID string `json:"channel_id,omitempty"`
}

// ScheduledNotification is a notification waiting on the local scheduler.
type ScheduledNotification struct {
	ID      string              `json:"id"`
	At      time.Time           `json:"at"`
	Content NotificationContent `json:"content"`
	Options NotificationOptions `json:"options"`
}

// Voice is one entry of the speech engine's voice catalogue.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}
