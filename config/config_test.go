package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"agenda/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: agenda
  log:
    level: debug
http:
  port: 9090
storage:
  driver: sqlite
  dsn: agenda.db
reminder:
  enabled: true
  interval: 45s
firebase:
  deviceTokens: []
speech:
  provider: command
`

func writeConfig(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir)
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("REMINDER_INTERVAL", "1m")
	t.Setenv("FIREBASE_DEVICETOKENS", "token-a,token-b")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "agenda", cfg.Env.ServiceName)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, constants.StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "agenda.db", cfg.Storage.DSN)
	require.NotNil(t, cfg.Reminder)
	assert.Equal(t, time.Minute, cfg.Reminder.Interval)
	require.NotNil(t, cfg.Firebase)
	assert.Equal(t, []string{"token-a", "token-b"}, cfg.Firebase.DeviceTokens)
}

func TestLoadWithEnv_SearchesExtraPaths(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "config")
	require.NoError(t, os.Mkdir(nested, 0o755))
	writeConfig(t, nested)
	t.Chdir(root)

	cfg, err := LoadWithEnv[Config]("config", "config")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestNormalize_FillsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StorageDriverBlob, cfg.Storage.Driver)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Reminder.Interval)
	assert.Equal(t, constants.NotificationProviderLog, cfg.Notification.Provider)
	assert.Equal(t, "scheduling-app-channel", cfg.Notification.ChannelID)
	assert.Equal(t, constants.SpeechProviderLog, cfg.Speech.Provider)
	assert.Equal(t, "en-US", cfg.Speech.Language)
	assert.InDelta(t, 0.5, cfg.Speech.Rate, 1e-9)
	assert.InDelta(t, 1.0, cfg.Speech.Pitch, 1e-9)
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage:  &StorageConfig{Driver: constants.StorageDriverPostgres, DSN: "postgres://x"},
		Reminder: &ReminderConfig{Enabled: false, Interval: 5 * time.Second},
	}
	cfg.Normalize()

	assert.Equal(t, constants.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Empty(t, cfg.Storage.BucketURL)
	assert.False(t, cfg.Reminder.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Reminder.Interval)
}
