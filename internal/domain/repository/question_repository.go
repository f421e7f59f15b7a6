package repository

import (
	"context"
	"errors"

	"trivia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrQuestionNotFound is a domain-specific error returned when a question is not found.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository defines the standard operations for question persistence.
type QuestionRepository interface {
	// FindAll retrieves every stored question.
	FindAll(ctx context.Context) ([]*entity.Question, error)

	// FindByID retrieves a single question by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// Search retrieves questions matching the non-zero fields of the filter.
	Search(ctx context.Context, filter entity.QuestionFilter) ([]*entity.Question, error)

	// Create persists a new question entity to the storage.
	Create(ctx context.Context, question *entity.Question) error

	// CreateBatch persists several questions at once, used by the external import.
	CreateBatch(ctx context.Context, questions []*entity.Question) error

	// Update modifies an existing question entity in the storage.
	Update(ctx context.Context, question *entity.Question) error

	// Delete removes a question by its ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
