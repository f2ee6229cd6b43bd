// Package constants holds configuration enum values shared by infra providers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Key-value storage drivers.
const (
	StorageDriverBlob     = "blob"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// Push delivery providers behind the local notification scheduler.
const (
	NotificationProviderLog      = "log"
	NotificationProviderFirebase = "firebase"
)

// Text-to-speech providers.
const (
	SpeechProviderLog     = "log"
	SpeechProviderCommand = "command"
	SpeechProviderGoogle  = "google"
)
