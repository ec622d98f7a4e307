package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"swms/internal/domain"
	"swms/internal/repository"
)

// QuizService handles quiz result operations.
type QuizService struct {
	quizRepo repository.QuizResultRepository
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo repository.QuizResultRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo}
}

// RecordResultRequest contains the parameters for recording a quiz result.
type RecordResultRequest struct {
	UserID         string
	QuizID         string
	QuizTitle      string
	Score          int
	TotalQuestions int
	CorrectAnswers int
}

// RecordResult saves a completed quiz attempt.
func (s *QuizService) RecordResult(ctx context.Context, req RecordResultRequest) (*domain.QuizResult, error) {
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if req.QuizID == "" || req.TotalQuestions <= 0 {
		return nil, ErrInvalidQuizResult
	}
	if req.CorrectAnswers < 0 || req.CorrectAnswers > req.TotalQuestions {
		return nil, ErrInvalidQuizResult
	}

	result := &domain.QuizResult{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		QuizID:         req.QuizID,
		QuizTitle:      req.QuizTitle,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		CreatedAt:      time.Now(),
	}

	if err := s.quizRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetResult retrieves a quiz result by ID.
func (s *QuizService) GetResult(ctx context.Context, id string) (*domain.QuizResult, error) {
	if id == "" {
		return nil, ErrInvalidQuizResult
	}

	return s.quizRepo.GetByID(ctx, id)
}
