package repository

import (
	"context"

	"swms/internal/domain"
)

// PaymentRecordRepository defines the persistence operations for verified
// payment records.
type PaymentRecordRepository interface {
	// Create persists a verified payment record.
	Create(ctx context.Context, record *domain.PaymentRecord) error

	// GetByPaymentID retrieves a record by the provider's payment id.
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)
}
