package service

import "errors"

var (
	// ErrInvalidAmount is returned when an order amount is missing or not positive.
	ErrInvalidAmount = errors.New("valid amount is required")

	// ErrMissingVerificationParams is returned when a verification request
	// lacks any of order id, payment id, or signature.
	ErrMissingVerificationParams = errors.New("missing payment verification parameters")

	// ErrVerificationFailed is returned when a supplied signature does not
	// match the expected digest. This is an expected outcome, not a system fault.
	ErrVerificationFailed = errors.New("payment verification failed")

	// ErrInvalidCredentials is returned when login email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidUserID is returned when a user id is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidClassification is returned when a classification record is incomplete.
	ErrInvalidClassification = errors.New("invalid classification record")

	// ErrInvalidQuizResult is returned when a quiz result is incomplete or inconsistent.
	ErrInvalidQuizResult = errors.New("invalid quiz result")
)

// OrderCreationError wraps a provider-side failure during order creation.
// The provider's message is preserved for diagnostics.
type OrderCreationError struct {
	Detail string
}

func (e *OrderCreationError) Error() string {
	return "failed to create order: " + e.Detail
}
