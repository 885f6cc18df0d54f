package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tassili/internal/models/db_models"
)

func TestDraftStorePutGetRemove(t *testing.T) {
	store := NewDraftStore(time.Minute)
	draft := NewDraft("account-1", db_models.Trip{Title: "Djanet Desert Magic"})

	store.Put(draft)
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get(draft.ID)
	require.True(t, ok)
	assert.Same(t, draft, got)

	store.Remove(draft.ID)
	_, ok = store.Get(draft.ID)
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestDraftStoreMissingId(t *testing.T) {
	store := NewDraftStore(time.Minute)
	_, ok := store.Get(uuid.New())
	assert.False(t, ok)
}

func TestDraftStoreExpiry(t *testing.T) {
	store := NewDraftStore(10 * time.Millisecond)
	draft := NewDraft("account-1", db_models.Trip{Title: "Djanet Desert Magic"})
	store.Put(draft)

	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(draft.ID)
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestDraftStoreGetRefreshesExpiry(t *testing.T) {
	store := NewDraftStore(40 * time.Millisecond)
	draft := NewDraft("account-1", db_models.Trip{Title: "Djanet Desert Magic"})
	store.Put(draft)

	// keep touching the draft; each Get pushes the deadline out
	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		_, ok := store.Get(draft.ID)
		require.True(t, ok)
	}
}
