package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"agenda/internal/domain/constants"
	"agenda/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 8080
	defaultBucketURL          = "file://./data?create_dir=true"
	defaultReminderInterval   = 30 * time.Second
	defaultSpeechRate         = 0.5
	defaultSpeechPitch        = 1.0
	defaultSpeechCommand      = "espeak-ng"
	defaultChannelName        = "Scheduling App Notifications"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the key-value backend holding the four collections
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Reminder configures the due-event notifier
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Notification configures the local notification scheduler
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Speech configures the text-to-speech engine
	Speech *SpeechConfig `json:"speech" yaml:"speech"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the key-value backend
type StorageConfig struct {
	// Driver is one of blob, sqlite, postgres
	Driver string `json:"driver" yaml:"driver"`

	// BucketURL is a gocloud blob URL used by the blob driver (file://, mem://, gs://, s3://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// DSN is the database connection string used by the sqlite and postgres drivers
	DSN string `json:"dsn" yaml:"dsn"`
}

// ReminderConfig defines the due-event notifier schedule
type ReminderConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// NotificationConfig defines the local notification scheduler
type NotificationConfig struct {
	// Provider type: "log" writes notifications to the log, "firebase" pushes through FCM
	Provider    string `json:"provider" yaml:"provider"`
	ChannelID   string `json:"channelId" yaml:"channelId"`
	ChannelName string `json:"channelName" yaml:"channelName"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string   `json:"projectId" yaml:"projectId"`
	CredentialsPath string   `json:"credentialsPath" yaml:"credentialsPath"`
	DeviceTokens    []string `json:"deviceTokens" yaml:"deviceTokens"`
}

// SpeechConfig defines the text-to-speech engine
type SpeechConfig struct {
	// Provider type: "log", "command" (local espeak-ng style binary) or "google" (Cloud Text-to-Speech)
	Provider string  `json:"provider" yaml:"provider"`
	Language string  `json:"language" yaml:"language"`
	Rate     float64 `json:"rate" yaml:"rate"`
	Pitch    float64 `json:"pitch" yaml:"pitch"`

	// Command is the binary used by the command provider
	Command string `json:"command" yaml:"command"`

	// CredentialsPath is the service account file for the google provider
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// OutputBucketURL receives synthesized clips from the google provider
	OutputBucketURL string `json:"outputBucketUrl" yaml:"outputBucketUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// STORAGE_BUCKETURL -> storage.bucketUrl
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.Normalize()

	return cfg, nil
}

// Normalize fills defaults for every section left empty in the YAML.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = constants.StorageDriverBlob
	}
	if c.Storage.Driver == constants.StorageDriverBlob && c.Storage.BucketURL == "" {
		c.Storage.BucketURL = defaultBucketURL
	}

	if c.Reminder == nil {
		c.Reminder = &ReminderConfig{Enabled: true}
	}
	if c.Reminder.Interval <= 0 {
		c.Reminder.Interval = defaultReminderInterval
	}

	if c.Notification == nil {
		c.Notification = &NotificationConfig{}
	}
	if c.Notification.Provider == "" {
		c.Notification.Provider = constants.NotificationProviderLog
	}
	if c.Notification.ChannelID == "" {
		c.Notification.ChannelID = "scheduling-app-channel"
	}
	if c.Notification.ChannelName == "" {
		c.Notification.ChannelName = defaultChannelName
	}

	if c.Firebase == nil {
		c.Firebase = &FirebaseConfig{}
	}

	if c.Speech == nil {
		c.Speech = &SpeechConfig{}
	}
	if c.Speech.Provider == "" {
		c.Speech.Provider = constants.SpeechProviderLog
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en-US"
	}
	if c.Speech.Rate == 0 {
		c.Speech.Rate = defaultSpeechRate
	}
	if c.Speech.Pitch == 0 {
		c.Speech.Pitch = defaultSpeechPitch
	}
	if c.Speech.Command == "" {
		c.Speech.Command = defaultSpeechCommand
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
