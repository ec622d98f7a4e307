package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swms/internal/domain"
	"swms/internal/middleware"
	"swms/internal/service"
)

// ClassificationHandler handles HTTP requests for classification history.
type ClassificationHandler struct {
	classificationService *service.ClassificationService
}

// NewClassificationHandler creates a new ClassificationHandler.
func NewClassificationHandler(classificationService *service.ClassificationService) *ClassificationHandler {
	return &ClassificationHandler{classificationService: classificationService}
}

// CreateClassificationRequest is the HTTP request body for saving a
// classification result.
type CreateClassificationRequest struct {
	Label      string  `json:"label"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	ImageURL   string  `json:"image_url"`
}

// ClassificationResponse is the HTTP representation of a history record.
type ClassificationResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	ImageURL   string  `json:"image_url"`
	CreatedAt  string  `json:"created_at"`
}

// Create handles POST /wasteClassificationHistory
func (h *ClassificationHandler) Create(c *gin.Context) {
	var req CreateClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	classification, err := h.classificationService.RecordClassification(c.Request.Context(), service.RecordClassificationRequest{
		UserID:     middleware.UserIDFromContext(c),
		Label:      req.Label,
		Category:   domain.WasteCategory(req.Category),
		Confidence: req.Confidence,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toClassificationResponse(classification))
}

// GetMine handles GET /wasteClassificationHistory
func (h *ClassificationHandler) GetMine(c *gin.Context) {
	history, err := h.classificationService.GetHistory(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ClassificationResponse, 0, len(history))
	for _, classification := range history {
		response = append(response, toClassificationResponse(classification))
	}

	respondJSON(c, http.StatusOK, response)
}

// Delete handles DELETE /wasteClassificationHistory/:id
func (h *ClassificationHandler) Delete(c *gin.Context) {
	err := h.classificationService.DeleteClassification(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"deleted": true})
}

// Clear handles DELETE /wasteClassificationHistory
func (h *ClassificationHandler) Clear(c *gin.Context) {
	deleted, err := h.classificationService.ClearHistory(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"deleted": deleted})
}

func toClassificationResponse(classification *domain.Classification) ClassificationResponse {
	return ClassificationResponse{
		ID:         classification.ID,
		Label:      classification.Label,
		Category:   string(classification.Category),
		Confidence: classification.Confidence,
		ImageURL:   classification.ImageURL,
		CreatedAt:  classification.CreatedAt.Format(time.RFC3339),
	}
}
