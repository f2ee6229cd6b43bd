package entity

// User is the locally stored profile. At most one exists; absence means not logged in.
type User struct {
	ID     string   `json:"id"`     // Random v4 UUID assigned at login.
	Name   string   `json:"name"`   // Display name.
	Email  string   `json:"email"`  // Lower-cased email.
	Groups []string `json:"groups"` // IDs of groups created by this user.
}

// NotificationSettings holds the user's alert preferences.
type NotificationSettings struct {
	VoiceEnabled     bool   `json:"voice_enabled"`
	SoundEnabled     bool   `json:"sound_enabled"`
	VibrationEnabled bool   `json:"vibration_enabled"`
	VoiceLanguage    string `json:"voice_language"` // BCP-47 tag, e.g. en-US.
}

// DefaultVoiceLanguage is the speech language used until the user picks one.
const DefaultVoiceLanguage = "en-US"

// DefaultNotificationSettings returns the settings used before the user changes anything.
func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		VoiceEnabled:     true,
		SoundEnabled:     true,
		VibrationEnabled: true,
		VoiceLanguage:    DefaultVoiceLanguage,
	}
}
