package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single quiz-style trivia question, either created by a
// client or imported from the external provider.
type Question struct {
	ID               uuid.UUID
	Category         string
	Type             string // "multiple" or "boolean", following the Open Trivia DB vocabulary.
	Difficulty       string // "easy", "medium" or "hard".
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// QuestionFilter narrows question searches. Zero-value fields are ignored.
type QuestionFilter struct {
	Category   string
	Type       string
	Difficulty string
}
