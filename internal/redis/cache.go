package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// HistoryCacheTTL bounds how stale a cached classification list can get.
// Writes invalidate the entry, so the TTL only covers missed invalidations.
const HistoryCacheTTL = 60 * time.Second

const historyCachePrefix = "cache:history:"

// CachedClassification is the cache representation of one history record.
type CachedClassification struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetHistory retrieves a user's cached classification history.
// Returns nil on a cache miss.
func (s *CacheStore) GetHistory(ctx context.Context, userID string) ([]CachedClassification, error) {
	key := historyCachePrefix + userID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var history []CachedClassification
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SetHistory stores a user's classification history in cache.
func (s *CacheStore) SetHistory(ctx context.Context, userID string, history []CachedClassification) error {
	key := historyCachePrefix + userID
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, HistoryCacheTTL).Err()
}

// InvalidateHistory removes a user's history from cache.
func (s *CacheStore) InvalidateHistory(ctx context.Context, userID string) error {
	key := historyCachePrefix + userID
	return s.client.Del(ctx, key).Err()
}
