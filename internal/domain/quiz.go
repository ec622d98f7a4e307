package domain

import "time"

// QuizResult represents one completed quiz attempt.
type QuizResult struct {
	ID             string
	UserID         string
	QuizID         string
	QuizTitle      string
	Score          int
	TotalQuestions int
	CorrectAnswers int
	CreatedAt      time.Time
}
