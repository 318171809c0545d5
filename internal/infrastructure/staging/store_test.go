package staging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obeserver/internal/domain/repositories"
	"obeserver/tabular"
)

func TestStorePutGet(t *testing.T) {
	store := NewStore(time.Minute, 0)
	defer store.Close()

	session := &repositories.StagingSession{SessionID: "s1", Batch: "20SW"}
	store.Put(session)

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "20SW", got.Batch)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(20*time.Millisecond, 0)
	defer store.Close()

	store.Put(&repositories.StagingSession{SessionID: "s1"})

	_, ok := store.Get("s1")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = store.Get("s1")
	assert.False(t, ok, "entry should expire after TTL")
	assert.Equal(t, 0, store.Len(), "expired entry is dropped on access")
}

func TestStorePutResetsExpiry(t *testing.T) {
	store := NewStore(50*time.Millisecond, 0)
	defer store.Close()

	store.Put(&repositories.StagingSession{SessionID: "s1"})
	time.Sleep(30 * time.Millisecond)
	store.Put(&repositories.StagingSession{SessionID: "s1", Batch: "21SW"})
	time.Sleep(30 * time.Millisecond)

	got, ok := store.Get("s1")
	require.True(t, ok, "refreshed entry should still be live")
	assert.Equal(t, "21SW", got.Batch)
}

func TestStoreDeleteOnce(t *testing.T) {
	store := NewStore(time.Minute, 0)
	defer store.Close()

	store.Put(&repositories.StagingSession{SessionID: "s1"})

	assert.True(t, store.Delete("s1"))
	assert.False(t, store.Delete("s1"), "second delete must report absence")
}

func TestStoreDeleteExpired(t *testing.T) {
	store := NewStore(10*time.Millisecond, 0)
	defer store.Close()

	store.Put(&repositories.StagingSession{SessionID: "s1"})
	time.Sleep(30 * time.Millisecond)

	assert.False(t, store.Delete("s1"), "deleting an expired entry reports false")
}

func TestStoreJanitorSweep(t *testing.T) {
	store := NewStore(10*time.Millisecond, 15*time.Millisecond)
	defer store.Close()

	store.Put(&repositories.StagingSession{
		SessionID:    "s1",
		FailureSheet: &tabular.Sheet{Headers: []string{"Batch"}},
	})

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond, "janitor should remove expired entries")
}
