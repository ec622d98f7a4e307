package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"swms/internal/domain"
	"swms/internal/gateway"
)

// PaymentService handles payment order creation and verification against
// the payment gateway. It holds no per-request state; credentials are
// read-only after construction, so all methods are safe for concurrent use.
type PaymentService struct {
	orders    gateway.OrderCreator
	keyID     string
	keySecret string
	currency  string
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(orders gateway.OrderCreator, keyID, keySecret, currency string) *PaymentService {
	return &PaymentService{
		orders:    orders,
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		now:       time.Now,
	}
}

// PublicKey returns the gateway key id the checkout widget needs to open
// a session. Pure config read.
func (s *PaymentService) PublicKey() string {
	return s.keyID
}

// CreateOrder creates a payment order with the provider. The amount must
// already be expressed in minor currency units (paise); only rounding to
// the nearest integer is performed here, never a x100 conversion. Nothing
// is persisted locally; the provider is the source of truth for the order.
func (s *PaymentService) CreateOrder(ctx context.Context, amount float64) (*domain.Order, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	minorUnits := int64(math.Round(amount))
	receipt := fmt.Sprintf("receipt_order_%d", s.now().UnixMilli())

	order, err := s.orders.CreateOrder(ctx, minorUnits, s.currency, receipt)
	if err != nil {
		return nil, &OrderCreationError{Detail: err.Error()}
	}

	return order, nil
}

// VerifyPaymentRequest contains the checkout widget's callback parameters.
type VerifyPaymentRequest struct {
	OrderID   string
	PaymentID string
	Signature string
}

// VerifyPayment checks the authenticity of a payment confirmation. The
// expected signature is the lowercase hex HMAC-SHA256 digest of
// "<orderID>|<paymentID>" under the gateway secret; the supplied signature
// must match byte for byte. Each call is stateless and deterministic.
func (s *PaymentService) VerifyPayment(req VerifyPaymentRequest) (string, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return "", ErrMissingVerificationParams
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	// Constant-time, byte-for-byte comparison of the hex strings. No case
	// or whitespace normalization: the provider emits lowercase hex.
	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		return "", ErrVerificationFailed
	}

	return req.PaymentID, nil
}
