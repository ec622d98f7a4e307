package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"swms/internal/domain"
	"swms/internal/middleware"
	"swms/internal/repository"
	"swms/internal/service"
)

// PaymentHandler handles HTTP requests for the payment gateway endpoints.
type PaymentHandler struct {
	paymentService *service.PaymentService
	recordRepo     repository.PaymentRecordRepository
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService, recordRepo repository.PaymentRecordRepository) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		recordRepo:     recordRepo,
	}
}

// CreateOrderRequest is the HTTP request body for creating an order.
// Amount must already be in minor currency units (paise); the server
// never multiplies by 100.
type CreateOrderRequest struct {
	Amount float64 `json:"amount"`
}

// VerifyPaymentRequest is the checkout widget's callback payload.
// Field names follow the provider's convention.
type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// GetKey handles GET /get-key
func (h *PaymentHandler) GetKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"key":     h.paymentService.PublicKey(),
	})
}

// CreateOrder handles POST /create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GatewayErrorResponse{
			Error:   true,
			Message: "Valid amount is required",
		})
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, GatewayErrorResponse{
				Error:   true,
				Message: "Valid amount is required",
			})
			return
		}

		var orderErr *service.OrderCreationError
		details := err.Error()
		if errors.As(err, &orderErr) {
			details = orderErr.Detail
		}
		c.JSON(http.StatusInternalServerError, GatewayErrorResponse{
			Error:   true,
			Message: "Failed to create order",
			Details: details,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
		"key":     h.paymentService.PublicKey(),
	})
}

// VerifyPayment handles POST /verify-payment
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GatewayErrorResponse{
			Error:   true,
			Message: "Missing payment verification parameters",
		})
		return
	}

	paymentID, err := h.paymentService.VerifyPayment(service.VerifyPaymentRequest{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingVerificationParams):
			c.JSON(http.StatusBadRequest, GatewayErrorResponse{
				Error:   true,
				Message: "Missing payment verification parameters",
			})
		case errors.Is(err, service.ErrVerificationFailed):
			// Expected outcome for a tampered or mismatched signature.
			c.JSON(http.StatusBadRequest, GatewayErrorResponse{
				Error:   true,
				Message: "Payment verification failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, GatewayErrorResponse{
				Error:   true,
				Message: "Payment verification failed",
				Details: err.Error(),
			})
		}
		return
	}

	h.recordVerifiedPayment(c, req)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment verified successfully",
		"payment_id": paymentID,
	})
}

// recordVerifiedPayment stores the confirmed triple for audit. Best-effort:
// the payment is already trusted, so a storage failure must not turn a
// verified payment into an error response.
func (h *PaymentHandler) recordVerifiedPayment(c *gin.Context, req VerifyPaymentRequest) {
	if h.recordRepo == nil {
		return
	}

	record := &domain.PaymentRecord{
		ID:        uuid.New().String(),
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		UserID:    middleware.UserIDFromContext(c),
		CreatedAt: time.Now(),
	}

	if err := h.recordRepo.Create(c.Request.Context(), record); err != nil {
		log.Printf("failed to record verified payment %s: %v", req.RazorpayPaymentID, err)
	}
}
