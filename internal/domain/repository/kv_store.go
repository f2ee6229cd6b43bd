// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// Storage keys of the four persisted values.
const (
	KeyEvents   = "scheduling_app_events"
	KeyGroups   = "scheduling_app_groups"
	KeyUser     = "scheduling_app_user"
	KeySettings = "scheduling_app_settings"
)

// KeyValueStore is the string-valued backend every collection is persisted in.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
