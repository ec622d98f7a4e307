package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swms/internal/middleware"
	"swms/internal/service"
)

// QuizHandler handles HTTP requests for quiz results.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// RecordResultRequest is the HTTP request body for recording a quiz result.
type RecordResultRequest struct {
	QuizID         string `json:"quiz_id"`
	QuizTitle      string `json:"quiz_title"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
}

// QuizResultResponse is the HTTP representation of a quiz result.
type QuizResultResponse struct {
	ID             string `json:"id"`
	QuizID         string `json:"quiz_id"`
	QuizTitle      string `json:"quiz_title"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
}

// RecordResult handles POST /userQuizResult
func (h *QuizHandler) RecordResult(c *gin.Context) {
	var req RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.quizService.RecordResult(c.Request.Context(), service.RecordResultRequest{
		UserID:         middleware.UserIDFromContext(c),
		QuizID:         req.QuizID,
		QuizTitle:      req.QuizTitle,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, QuizResultResponse{
		ID:             result.ID,
		QuizID:         result.QuizID,
		QuizTitle:      result.QuizTitle,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
	})
}

// GetResult handles GET /userQuizResult/:id
func (h *QuizHandler) GetResult(c *gin.Context) {
	result, err := h.quizService.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, QuizResultResponse{
		ID:             result.ID,
		QuizID:         result.QuizID,
		QuizTitle:      result.QuizTitle,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
	})
}
