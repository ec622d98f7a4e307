package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"swms/internal/domain"
)

// OrderCreator is the narrow interface over the payment provider's
// order-creation API. The concrete client can be swapped for a test
// double without touching the payment service.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.Order, error)
}

const defaultBaseURL = "https://api.razorpay.com/v1"

// RazorpayClient creates orders against the Razorpay REST API using
// basic auth (key id / key secret).
type RazorpayClient struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewRazorpayClient creates a new RazorpayClient.
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

// NewRazorpayClientWithBaseURL creates a client pointed at a custom API
// base URL. Used by tests to target a local stub server.
func NewRazorpayClientWithBaseURL(keyID, keySecret, baseURL string) *RazorpayClient {
	c := NewRazorpayClient(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type providerErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder makes one outbound call to the provider's order-creation
// endpoint. Amount must already be in minor currency units. No retry is
// attempted; any failure is returned to the caller as-is.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.Order, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order creation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var provErr providerErrorResponse
		if err := json.Unmarshal(body, &provErr); err == nil && provErr.Error.Description != "" {
			return nil, fmt.Errorf("provider rejected order: %s", provErr.Error.Description)
		}
		return nil, fmt.Errorf("provider rejected order: status %d", resp.StatusCode)
	}

	var order domain.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to decode provider order: %w", err)
	}

	return &order, nil
}
