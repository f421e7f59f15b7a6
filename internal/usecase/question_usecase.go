package usecase

import (
	"context"

	"trivia/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateQuestionInput defines the data required to create a question.
type CreateQuestionInput struct {
	Category         string   `json:"category" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	Difficulty       string   `json:"difficulty" validate:"required"`
	Question         string   `json:"question" validate:"required"`
	CorrectAnswer    string   `json:"correct_answer" validate:"required"`
	IncorrectAnswers []string `json:"incorrect_answers" validate:"required,min=1"`
}

// UpdateQuestionInput defines a partial update; nil fields keep their
// stored values.
type UpdateQuestionInput struct {
	Category         *string   `json:"category"`
	Type             *string   `json:"type"`
	Difficulty       *string   `json:"difficulty"`
	Question         *string   `json:"question"`
	CorrectAnswer    *string   `json:"correct_answer"`
	IncorrectAnswers *[]string `json:"incorrect_answers"`
}

// SearchQuestionsInput narrows a question search; empty fields are ignored.
type SearchQuestionsInput struct {
	Category   string
	Type       string
	Difficulty string
}

// ImportQuestionsInput controls an external import.
type ImportQuestionsInput struct {
	Amount  int
	Persist bool
}

// --- Output DTOs ---

// ImportQuestionsOutput reports what an external import produced.
type ImportQuestionsOutput struct {
	Questions []*entity.Question
	Persisted bool
}

// QuestionUsecase defines the interface for question-related business operations.
type QuestionUsecase interface {
	List(ctx context.Context) ([]*entity.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	Create(ctx context.Context, input *CreateQuestionInput) (*entity.Question, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateQuestionInput) (*entity.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, input *SearchQuestionsInput) ([]*entity.Question, error)

	// Import fetches questions from the external provider and, when
	// requested, persists them alongside locally created questions.
	Import(ctx context.Context, input *ImportQuestionsInput) (*ImportQuestionsOutput, error)
}
