package repository

import (
	"context"

	"swms/internal/domain"
)

// QuizResultRepository defines the persistence operations for quiz results.
type QuizResultRepository interface {
	// Create persists a new quiz result.
	Create(ctx context.Context, result *domain.QuizResult) error

	// GetByID retrieves a quiz result by ID.
	GetByID(ctx context.Context, id string) (*domain.QuizResult, error)
}
