package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swms/internal/domain"
	"swms/internal/repository"
)

// QuizResultRepository is a PostgreSQL implementation of
// repository.QuizResultRepository.
type QuizResultRepository struct {
	q Querier
}

// NewQuizResultRepository creates a new PostgreSQL quiz result repository.
func NewQuizResultRepository(db *sql.DB) *QuizResultRepository {
	return &QuizResultRepository{q: db}
}

// Create persists a new quiz result.
func (r *QuizResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	query := `
		INSERT INTO quiz_results (id, user_id, quiz_id, quiz_title, score, total_questions, correct_answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		result.ID,
		result.UserID,
		result.QuizID,
		result.QuizTitle,
		result.Score,
		result.TotalQuestions,
		result.CorrectAnswers,
		result.CreatedAt,
	)

	return err
}

// GetByID retrieves a quiz result by ID.
func (r *QuizResultRepository) GetByID(ctx context.Context, id string) (*domain.QuizResult, error) {
	query := `
		SELECT id, user_id, quiz_id, quiz_title, score, total_questions, correct_answers, created_at
		FROM quiz_results WHERE id = $1
	`

	var result domain.QuizResult
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&result.ID,
		&result.UserID,
		&result.QuizID,
		&result.QuizTitle,
		&result.Score,
		&result.TotalQuestions,
		&result.CorrectAnswers,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &result, nil
}
