package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swms/internal/domain"
	"swms/internal/repository"
)

// PaymentRecordRepository is a PostgreSQL implementation of
// repository.PaymentRecordRepository.
type PaymentRecordRepository struct {
	q Querier
}

// NewPaymentRecordRepository creates a new PostgreSQL payment record repository.
func NewPaymentRecordRepository(db *sql.DB) *PaymentRecordRepository {
	return &PaymentRecordRepository{q: db}
}

// Create persists a verified payment record.
func (r *PaymentRecordRepository) Create(ctx context.Context, record *domain.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (id, order_id, payment_id, signature, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		record.ID,
		record.OrderID,
		record.PaymentID,
		record.Signature,
		record.UserID,
		record.CreatedAt,
	)

	return err
}

// GetByPaymentID retrieves a record by the provider's payment id.
func (r *PaymentRecordRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	query := `
		SELECT id, order_id, payment_id, signature, user_id, created_at
		FROM payment_records WHERE payment_id = $1
	`

	var record domain.PaymentRecord
	err := r.q.QueryRowContext(ctx, query, paymentID).Scan(
		&record.ID,
		&record.OrderID,
		&record.PaymentID,
		&record.Signature,
		&record.UserID,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &record, nil
}
