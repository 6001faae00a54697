package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put(context.Background(), "a", []byte("one"), time.Minute))

	value, err := store.Get(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, []byte("one"), value)
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "absent")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.Clock = func() time.Time { return now }

	require.NoError(t, store.Put(context.Background(), "a", []byte("one"), 30*time.Second))

	now = now.Add(29 * time.Second)
	_, err := store.Get(context.Background(), "a")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = store.Get(context.Background(), "a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreNoTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.Clock = func() time.Time { return now }

	require.NoError(t, store.Put(context.Background(), "a", []byte("one"), 0))

	now = now.Add(240 * time.Hour)
	_, err := store.Get(context.Background(), "a")
	require.NoError(t, err)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put(context.Background(), "a", []byte("one"), time.Minute))
	require.NoError(t, store.Put(context.Background(), "a", []byte("two"), time.Minute))

	value, err := store.Get(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, []byte("two"), value)
	require.Equal(t, 1, store.Len())
}
