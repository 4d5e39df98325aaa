package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return NewRedisStore(rdb), mr
}

func validSession() Session {
	now := time.Now()
	return Session{
		SessionID: "sid-1",
		UserID:    "user-1",
		UserName:  "Alice",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestCreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, validSession()))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "Alice", got.UserName)
}

func TestGetUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateRejectsIncompleteSession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// user_id and user_name travel together; neither may be missing
	s := validSession()
	s.UserName = ""
	assert.Error(t, store.Create(ctx, s))

	s = validSession()
	s.UserID = ""
	assert.Error(t, store.Create(ctx, s))

	s = validSession()
	s.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Create(ctx, s))
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, validSession()))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting again is a no-op
	require.NoError(t, store.Delete(ctx, "sid-1"))
}

func TestSessionExpiresWithTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	s := validSession()
	s.ExpiresAt = time.Now().Add(time.Minute)
	require.NoError(t, store.Create(ctx, s))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
