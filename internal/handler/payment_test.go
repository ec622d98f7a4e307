package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"swms/internal/domain"
	"swms/internal/service"
)

const (
	testKeyID  = "rzp_test_key"
	testSecret = "test_secret"
)

type fakeOrderCreator struct {
	CallCount  int32
	LastAmount int64

	Order *domain.Order
	Err   error
}

func (f *fakeOrderCreator) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.Order, error) {
	atomic.AddInt32(&f.CallCount, 1)
	f.LastAmount = amount
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Order, nil
}

type fakePaymentRecordRepo struct {
	CreateCallCount int32
	LastRecord      *domain.PaymentRecord
	CreateError     error
}

func (f *fakePaymentRecordRepo) Create(ctx context.Context, record *domain.PaymentRecord) error {
	atomic.AddInt32(&f.CreateCallCount, 1)
	f.LastRecord = record
	return f.CreateError
}

func (f *fakePaymentRecordRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	return nil, nil
}

func newPaymentRouter(orders *fakeOrderCreator, records *fakePaymentRecordRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	paymentService := service.NewPaymentService(orders, testKeyID, testSecret, "INR")
	h := NewPaymentHandler(paymentService, records)

	router := gin.New()
	router.GET("/get-key", h.GetKey)
	router.POST("/create-order", h.CreateOrder)
	router.POST("/verify-payment", h.VerifyPayment)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetKey_ReturnsConfiguredKey(t *testing.T) {
	t.Parallel()

	router := newPaymentRouter(&fakeOrderCreator{}, &fakePaymentRecordRepo{})

	w := doJSON(t, router, http.MethodGet, "/get-key", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Key     string `json:"key"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || resp.Key != testKeyID {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateOrder_Success(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderCreator{
		Order: &domain.Order{
			ID:       "order_ABC123",
			Entity:   "order",
			Amount:   50000,
			Currency: "INR",
			Status:   "created",
		},
	}
	router := newPaymentRouter(orders, &fakePaymentRecordRepo{})

	w := doJSON(t, router, http.MethodPost, "/create-order", map[string]any{"amount": 50000})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		Order   domain.Order `json:"order"`
		Key     string       `json:"key"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp.Order.ID != "order_ABC123" {
		t.Errorf("expected provider order id in response, got %s", resp.Order.ID)
	}
	if resp.Key != testKeyID {
		t.Errorf("expected public key in response, got %s", resp.Key)
	}
	if orders.LastAmount != 50000 {
		t.Errorf("expected exact amount forwarded, got %d", orders.LastAmount)
	}
}

func TestCreateOrder_ZeroAmount_NoProviderCall(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderCreator{}
	router := newPaymentRouter(orders, &fakePaymentRecordRepo{})

	w := doJSON(t, router, http.MethodPost, "/create-order", map[string]any{"amount": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if orders.CallCount != 0 {
		t.Errorf("expected no provider call, got %d", orders.CallCount)
	}

	var resp GatewayErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Error || resp.Message == "" {
		t.Errorf("unexpected error envelope: %+v", resp)
	}
}

func TestCreateOrder_MissingAmount_NoProviderCall(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderCreator{}
	router := newPaymentRouter(orders, &fakePaymentRecordRepo{})

	w := doJSON(t, router, http.MethodPost, "/create-order", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if orders.CallCount != 0 {
		t.Errorf("expected no provider call, got %d", orders.CallCount)
	}
}

func TestCreateOrder_ProviderFailure_Returns500WithDetails(t *testing.T) {
	t.Parallel()

	orders := &fakeOrderCreator{Err: errors.New("provider rejected order: key invalid")}
	router := newPaymentRouter(orders, &fakePaymentRecordRepo{})

	w := doJSON(t, router, http.MethodPost, "/create-order", map[string]any{"amount": 100})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp GatewayErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Details != "provider rejected order: key invalid" {
		t.Errorf("expected provider detail surfaced, got %q", resp.Details)
	}
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	t.Parallel()

	records := &fakePaymentRecordRepo{}
	router := newPaymentRouter(&fakeOrderCreator{}, records)

	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte("order_ABC123|pay_XYZ789"))
	signature := hex.EncodeToString(mac.Sum(nil))

	w := doJSON(t, router, http.MethodPost, "/verify-payment", map[string]any{
		"razorpay_order_id":   "order_ABC123",
		"razorpay_payment_id": "pay_XYZ789",
		"razorpay_signature":  signature,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		PaymentID string `json:"payment_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || resp.PaymentID != "pay_XYZ789" {
		t.Errorf("unexpected response: %+v", resp)
	}

	if records.CreateCallCount != 1 {
		t.Errorf("expected verified payment recorded once, got %d", records.CreateCallCount)
	}
	if records.LastRecord.PaymentID != "pay_XYZ789" {
		t.Errorf("unexpected recorded payment id: %s", records.LastRecord.PaymentID)
	}
}

func TestVerifyPayment_TamperedSignature_Returns400Not500(t *testing.T) {
	t.Parallel()

	records := &fakePaymentRecordRepo{}
	router := newPaymentRouter(&fakeOrderCreator{}, records)

	w := doJSON(t, router, http.MethodPost, "/verify-payment", map[string]any{
		"razorpay_order_id":   "order_ABC123",
		"razorpay_payment_id": "pay_XYZ789",
		"razorpay_signature":  "deadbeef",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if records.CreateCallCount != 0 {
		t.Errorf("rejected payment must not be recorded, got %d creates", records.CreateCallCount)
	}
}

func TestVerifyPayment_MissingParams(t *testing.T) {
	t.Parallel()

	router := newPaymentRouter(&fakeOrderCreator{}, &fakePaymentRecordRepo{})

	w := doJSON(t, router, http.MethodPost, "/verify-payment", map[string]any{
		"razorpay_order_id": "order_ABC123",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestVerifyPayment_RecordFailureDoesNotFailResponse(t *testing.T) {
	t.Parallel()

	records := &fakePaymentRecordRepo{CreateError: errors.New("db down")}
	router := newPaymentRouter(&fakeOrderCreator{}, records)

	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte("order_ABC123|pay_XYZ789"))
	signature := hex.EncodeToString(mac.Sum(nil))

	w := doJSON(t, router, http.MethodPost, "/verify-payment", map[string]any{
		"razorpay_order_id":   "order_ABC123",
		"razorpay_payment_id": "pay_XYZ789",
		"razorpay_signature":  signature,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verified payment must succeed despite record failure, got %d", w.Code)
	}
}
