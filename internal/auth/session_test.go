package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := auth.NewMemoryStoreWithClock(time.Hour, func() time.Time { return now })

	t.Run("create and resolve", func(t *testing.T) {
		token, err := store.Create(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, token, 64)

		userID, err := store.UserID(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := store.Create(ctx, "user-1")
		require.NoError(t, err)
		b, err := store.Create(ctx, "user-1")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.UserID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("delete", func(t *testing.T) {
		token, err := store.Create(ctx, "user-2")
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, token))

		_, err = store.UserID(ctx, token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.NoError(t, store.Delete(ctx, token), "deleting twice is fine")
	})

	t.Run("expiry", func(t *testing.T) {
		token, err := store.Create(ctx, "user-3")
		require.NoError(t, err)

		now = now.Add(59 * time.Minute)
		_, err = store.UserID(ctx, token)
		require.NoError(t, err)

		now = now.Add(time.Minute)
		_, err = store.UserID(ctx, token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	assert.Equal(t, time.Hour, store.TTL())
}

func TestMemoryStore_DefaultTTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, auth.NewMemoryStore(0).TTL())
}

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	store := auth.NewRedisStore(rdb, time.Minute)

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	userID, err := store.UserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	ttl, err := rdb.TTL(ctx, "session:"+token).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.UserID(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = store.UserID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
