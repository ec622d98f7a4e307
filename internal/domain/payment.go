package domain

import "time"

// Order is the payment provider's order object, returned verbatim to the
// checkout widget. Field names follow the provider's wire format.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}

// PaymentRecord is a verified payment persisted after a successful
// signature check. Verification itself is stateless; the record exists
// for audit and reconciliation only.
type PaymentRecord struct {
	ID        string
	OrderID   string
	PaymentID string
	Signature string
	UserID    string // empty for anonymous checkouts
	CreatedAt time.Time
}
