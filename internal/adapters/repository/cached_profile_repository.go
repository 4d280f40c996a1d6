package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

var _ domain.ProfileRepository = (*CachedProfileRepository)(nil)

const profileCacheTTL = 30 * time.Minute

// CachedProfileRepository is a read-through cache in front of another
// profile repository. Every score computation reads the profile, so hits
// here save a round trip per request.
type CachedProfileRepository struct {
	next  domain.ProfileRepository
	cache *redis.Client
}

func NewCachedProfileRepository(next domain.ProfileRepository, cache *redis.Client) *CachedProfileRepository {
	return &CachedProfileRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedProfileRepository) cacheKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

func (r *CachedProfileRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate profile for user %s: %v", userID, err)
	}
}

func (r *CachedProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var p domain.Profile
		if err := json.Unmarshal([]byte(val), &p); err == nil {
			return &p, nil
		}

		log.Printf("[CACHE] Corrupted profile for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	p, err := r.next.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if setErr := r.cache.Set(ctx, key, data, profileCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return p, nil
}

func (r *CachedProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	if err := r.next.Upsert(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx, p.UserID)
	return nil
}

func (r *CachedProfileRepository) UpdateStreaks(ctx context.Context, userID string, current, longest int) error {
	defer r.invalidate(ctx, userID)
	return r.next.UpdateStreaks(ctx, userID, current, longest)
}
