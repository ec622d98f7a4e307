package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRazorpayClient_CreateOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "key_secret" {
			t.Errorf("expected basic auth with gateway credentials")
		}

		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Amount != 50000 || req.Currency != "INR" || req.Receipt != "receipt_order_1" {
			t.Errorf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":         "order_ABC123",
			"entity":     "order",
			"amount":     50000,
			"amount_due": 50000,
			"currency":   "INR",
			"receipt":    "receipt_order_1",
			"status":     "created",
			"created_at": 1700000000,
		})
	}))
	defer server.Close()

	client := NewRazorpayClientWithBaseURL("key_id", "key_secret", server.URL)

	order, err := client.CreateOrder(context.Background(), 50000, "INR", "receipt_order_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID != "order_ABC123" {
		t.Errorf("expected order id order_ABC123, got %s", order.ID)
	}
	if order.Status != "created" {
		t.Errorf("expected status created, got %s", order.Status)
	}
}

func TestRazorpayClient_ProviderRejection(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":        "BAD_REQUEST_ERROR",
				"description": "amount exceeds maximum amount allowed",
			},
		})
	}))
	defer server.Close()

	client := NewRazorpayClientWithBaseURL("key_id", "key_secret", server.URL)

	_, err := client.CreateOrder(context.Background(), 1<<40, "INR", "receipt_order_2")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "provider rejected order: amount exceeds maximum amount allowed" {
		t.Errorf("provider description not surfaced: %s", got)
	}
}

func TestRazorpayClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	// Point at a closed server to force a transport error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewRazorpayClientWithBaseURL("key_id", "key_secret", server.URL)

	_, err := client.CreateOrder(context.Background(), 100, "INR", "receipt_order_3")
	if err == nil {
		t.Fatal("expected error for unreachable provider")
	}
}
