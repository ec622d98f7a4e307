package redis

import "context"

// HistoryCache defines the interface for classification-history caching.
type HistoryCache interface {
	GetHistory(ctx context.Context, userID string) ([]CachedClassification, error)
	SetHistory(ctx context.Context, userID string, history []CachedClassification) error
	InvalidateHistory(ctx context.Context, userID string) error
}

// Ensure concrete types implement interfaces.
var _ HistoryCache = (*CacheStore)(nil)
