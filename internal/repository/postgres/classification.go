package postgres

import (
	"context"
	"database/sql"

	"swms/internal/domain"
	"swms/internal/repository"
)

// ClassificationRepository is a PostgreSQL implementation of
// repository.ClassificationRepository.
type ClassificationRepository struct {
	q Querier
}

// NewClassificationRepository creates a new PostgreSQL classification repository.
func NewClassificationRepository(db *sql.DB) *ClassificationRepository {
	return &ClassificationRepository{q: db}
}

// NewClassificationRepositoryWithTx creates a classification repository using a transaction.
func NewClassificationRepositoryWithTx(tx *sql.Tx) *ClassificationRepository {
	return &ClassificationRepository{q: tx}
}

// Create persists a new classification record.
func (r *ClassificationRepository) Create(ctx context.Context, classification *domain.Classification) error {
	query := `
		INSERT INTO classifications (id, user_id, label, category, confidence, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		classification.ID,
		classification.UserID,
		classification.Label,
		classification.Category,
		classification.Confidence,
		classification.ImageURL,
		classification.CreatedAt,
	)

	return err
}

// GetByUser retrieves all records for a user, newest first.
func (r *ClassificationRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Classification, error) {
	query := `
		SELECT id, user_id, label, category, confidence, image_url, created_at
		FROM classifications WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Classification
	for rows.Next() {
		var c domain.Classification
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Label,
			&c.Category,
			&c.Confidence,
			&c.ImageURL,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}

	return result, rows.Err()
}

// DeleteByID deletes a single record owned by the given user.
func (r *ClassificationRepository) DeleteByID(ctx context.Context, userID, id string) error {
	query := `DELETE FROM classifications WHERE id = $1 AND user_id = $2`

	result, err := r.q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByUser deletes all records for a user.
func (r *ClassificationRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM classifications WHERE user_id = $1`

	result, err := r.q.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
