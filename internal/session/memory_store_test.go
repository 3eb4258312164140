package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_CreateGetDestroy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	sess, err := store.Create(ctx, 7)
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, uint(7), sess.UserID)

	got, err := store.Get(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)

	assert.NoError(t, store.Destroy(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	current := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	sess, err := store.Create(ctx, 3)
	assert.NoError(t, err)

	current = current.Add(2 * time.Hour)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DestroyIsUnconditional(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	assert.NoError(t, store.Destroy(context.Background(), "never-created"))
}
