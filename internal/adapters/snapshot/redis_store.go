package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

var _ domain.SnapshotStore = (*RedisStore)(nil)

// RedisStore keeps the snapshot in a Redis string without expiry, so a
// running session survives restarts of any API replica.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, userID string) *RedisStore {
	return &RedisStore{client: client, key: keyFor(userID)}
}

func RedisFactory(client *redis.Client) func(userID string) domain.SnapshotStore {
	return func(userID string) domain.SnapshotStore {
		return NewRedisStore(client, userID)
	}
}

func (s *RedisStore) Save(ctx context.Context, snap domain.SessionSnapshot) error {
	payload, err := encode(snap)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set workout snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*domain.SessionSnapshot, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("redis get workout snapshot: %w", err)
	}
	return decode(payload)
}
