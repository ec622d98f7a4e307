package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"swms/internal/domain"
	internalRedis "swms/internal/redis"
	"swms/internal/repository"
)

// ClassificationService handles waste-classification history operations.
// Reads are served from a per-user Redis cache when warm; every write
// invalidates the owner's cache entry.
type ClassificationService struct {
	classificationRepo repository.ClassificationRepository
	cache              internalRedis.HistoryCache
}

// NewClassificationService creates a new ClassificationService.
func NewClassificationService(classificationRepo repository.ClassificationRepository, cache internalRedis.HistoryCache) *ClassificationService {
	return &ClassificationService{
		classificationRepo: classificationRepo,
		cache:              cache,
	}
}

// RecordClassificationRequest contains the parameters for saving a
// classification result reported by the external classifier.
type RecordClassificationRequest struct {
	UserID     string
	Label      string
	Category   domain.WasteCategory
	Confidence float64
	ImageURL   string
}

// RecordClassification saves one classification result to the user's history.
func (s *ClassificationService) RecordClassification(ctx context.Context, req RecordClassificationRequest) (*domain.Classification, error) {
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if req.Label == "" || req.Category == "" {
		return nil, ErrInvalidClassification
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return nil, ErrInvalidClassification
	}

	classification := &domain.Classification{
		ID:         uuid.New().String(),
		UserID:     req.UserID,
		Label:      req.Label,
		Category:   req.Category,
		Confidence: req.Confidence,
		ImageURL:   req.ImageURL,
		CreatedAt:  time.Now(),
	}

	if err := s.classificationRepo.Create(ctx, classification); err != nil {
		return nil, err
	}

	// Cache entry is stale now; a failed invalidation only means the TTL
	// covers it.
	if s.cache != nil {
		_ = s.cache.InvalidateHistory(ctx, req.UserID)
	}

	return classification, nil
}

// GetHistory returns the user's classification history, newest first.
func (s *ClassificationService) GetHistory(ctx context.Context, userID string) ([]*domain.Classification, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if s.cache != nil {
		cached, err := s.cache.GetHistory(ctx, userID)
		if err == nil && cached != nil {
			return fromCached(userID, cached), nil
		}
	}

	history, err := s.classificationRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetHistory(ctx, userID, toCached(history))
	}

	return history, nil
}

// DeleteClassification deletes a single record owned by the user.
func (s *ClassificationService) DeleteClassification(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if err := s.classificationRepo.DeleteByID(ctx, userID, id); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateHistory(ctx, userID)
	}

	return nil
}

// ClearHistory deletes all of the user's records and returns how many
// were removed.
func (s *ClassificationService) ClearHistory(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrInvalidUserID
	}

	deleted, err := s.classificationRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateHistory(ctx, userID)
	}

	return deleted, nil
}

func toCached(history []*domain.Classification) []internalRedis.CachedClassification {
	cached := make([]internalRedis.CachedClassification, 0, len(history))
	for _, c := range history {
		cached = append(cached, internalRedis.CachedClassification{
			ID:         c.ID,
			Label:      c.Label,
			Category:   string(c.Category),
			Confidence: c.Confidence,
			ImageURL:   c.ImageURL,
			CreatedAt:  c.CreatedAt,
		})
	}
	return cached
}

func fromCached(userID string, cached []internalRedis.CachedClassification) []*domain.Classification {
	history := make([]*domain.Classification, 0, len(cached))
	for _, c := range cached {
		history = append(history, &domain.Classification{
			ID:         c.ID,
			UserID:     userID,
			Label:      c.Label,
			Category:   domain.WasteCategory(c.Category),
			Confidence: c.Confidence,
			ImageURL:   c.ImageURL,
			CreatedAt:  c.CreatedAt,
		})
	}
	return history
}
