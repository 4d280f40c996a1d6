package snapshot

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: 3})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()
	require.NoError(t, rdb.FlushDB(ctx).Err())

	store := NewRedisStore(rdb, "user-1")

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSnapshot)

	start := int64(1717225200000)
	snap := domain.SessionSnapshot{IsRunning: true, StartTime: &start, Type: "workout", ElapsedSeconds: 7, LastUpdated: start + 7000}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, *got)

	require.NoError(t, rdb.Set(ctx, keyFor("user-1"), "not json", 0).Err())
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}
