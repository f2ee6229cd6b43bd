// Package store persists each collection as one JSON value in a key-value backend.
// Every write rewrites the whole collection. Read-only lookups that fail are
// logged and degrade to an empty collection or default value. Writes, and the
// reads they are built on, return a storage error and leave the stored value as is.
package store

import (
	"context"
	"encoding/json"

	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/errors"
)

// loadJSON decodes the value under key into dst. found is false when the key
// is absent or empty; err is set when the backend failed or the value does not decode.
func loadJSON(ctx context.Context, kv repository.KeyValueStore, key string, dst any) (found bool, err error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", key)
	}
	if !found || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return true, nil
}

func storeJSON(ctx context.Context, kv repository.KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to encode "+key)
	}

	if err := kv.Set(ctx, key, string(data)); err != nil {
		return domainerrors.NewStorageError(err, "failed to write "+key)
	}

	return nil
}
