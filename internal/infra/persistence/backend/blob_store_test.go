package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewBlobStore(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, found, err := store.Get(ctx, "scheduling_app_events")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "scheduling_app_events", `[{"id":"1"}]`))

	value, found, err := store.Get(ctx, "scheduling_app_events")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, store.Set(ctx, "scheduling_app_events", `[]`))
	value, _, err = store.Get(ctx, "scheduling_app_events")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestBlobStore_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := NewBlobStore(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Delete(ctx, "scheduling_app_user"))

	require.NoError(t, store.Set(ctx, "scheduling_app_user", `{"id":"u1"}`))
	require.NoError(t, store.Delete(ctx, "scheduling_app_user"))

	_, found, err := store.Get(ctx, "scheduling_app_user")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBlobStore_FileBucketPersists(t *testing.T) {
	ctx := context.Background()
	url := "file://" + t.TempDir()

	first, err := NewBlobStore(ctx, url)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "scheduling_app_settings", `{"voiceEnabled":false}`))
	require.NoError(t, first.Close())

	second, err := NewBlobStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	value, found, err := second.Get(ctx, "scheduling_app_settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"voiceEnabled":false}`, value)
}

func TestNewBlobStore_InvalidScheme(t *testing.T) {
	_, err := NewBlobStore(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
