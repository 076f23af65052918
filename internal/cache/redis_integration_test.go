//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a running Redis; set REDIS_URL to override the default address.
func newStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/15"
	}
	store, err := New(context.Background(), url)
	if err != nil {
		t.Skipf("Skipping integration test: Redis not available: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Reset()
		_ = store.Close()
	})
	return store
}

func TestStore_SetGetDelete(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("limiter:1.2.3.4", []byte("7"), time.Minute))
	val, err := store.Get("limiter:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, []byte("7"), val)

	require.NoError(t, store.Delete("limiter:1.2.3.4"))
	val, err = store.Get("limiter:1.2.3.4")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStore_MissingKeyIsNil(t *testing.T) {
	store := newStore(t)

	val, err := store.Get("never-set")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStore_Expiry(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("short", []byte("x"), 50*time.Millisecond))
	time.Sleep(150 * time.Millisecond)

	val, err := store.Get("short")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStore_Reset(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("a", []byte("1"), 0))
	require.NoError(t, store.Set("b", []byte("2"), 0))
	require.NoError(t, store.Reset())

	for _, key := range []string{"a", "b"} {
		val, err := store.Get(key)
		require.NoError(t, err)
		assert.Nil(t, val)
	}
}
