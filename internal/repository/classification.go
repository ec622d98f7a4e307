package repository

import (
	"context"

	"swms/internal/domain"
)

// ClassificationRepository defines the persistence operations for
// waste-classification history records.
type ClassificationRepository interface {
	// Create persists a new classification record.
	Create(ctx context.Context, classification *domain.Classification) error

	// GetByUser retrieves all records for a user, newest first.
	GetByUser(ctx context.Context, userID string) ([]*domain.Classification, error)

	// DeleteByID deletes a single record owned by the given user.
	// Returns ErrNotFound if the record does not exist or belongs to
	// another user.
	DeleteByID(ctx context.Context, userID, id string) error

	// DeleteByUser deletes all records for a user and returns how many
	// were removed.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
