package impl

import (
	"context"
	"log/slog"
	"strings"

	"trivia/internal/domain/entity"
	domainerrors "trivia/internal/domain/errors"
	"trivia/internal/domain/repository"
	"trivia/internal/domain/service"
	"trivia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// questionService implements the QuestionUsecase interface.
type questionService struct {
	questionRepo repository.QuestionRepository
	provider     service.TriviaProvider
	logger       *slog.Logger
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	provider service.TriviaProvider,
	logger *slog.Logger,
) usecase.QuestionUsecase {
	return &questionService{
		questionRepo: questionRepo,
		provider:     provider,
		logger:       logger,
	}
}

// List retrieves every stored question.
func (srv *questionService) List(ctx context.Context) ([]*entity.Question, error) {
	questions, err := srv.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return questions, nil
}

// GetByID retrieves a single question.
func (srv *questionService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrQuestionNotFound.WrapMessage("get question failed")
		}

		return nil, errors.WithStack(err)
	}

	return question, nil
}

// Create validates and persists a new question.
func (srv *questionService) Create(ctx context.Context, input *usecase.CreateQuestionInput) (*entity.Question, error) {
	if err := validateCreateQuestion(input); err != nil {
		return nil, err
	}

	question := &entity.Question{
		Category:         input.Category,
		Type:             input.Type,
		Difficulty:       input.Difficulty,
		Question:         input.Question,
		CorrectAnswer:    input.CorrectAnswer,
		IncorrectAnswers: input.IncorrectAnswers,
	}
	if err := srv.questionRepo.Create(ctx, question); err != nil {
		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Question created", "questionID", question.ID)

	return question, nil
}

// Update applies a partial update to an existing question.
func (srv *questionService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateQuestionInput) (*entity.Question, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrQuestionNotFound.WrapMessage("update question failed")
		}

		return nil, errors.WithStack(err)
	}

	if input.Category != nil {
		question.Category = *input.Category
	}
	if input.Type != nil {
		question.Type = *input.Type
	}
	if input.Difficulty != nil {
		question.Difficulty = *input.Difficulty
	}
	if input.Question != nil {
		question.Question = *input.Question
	}
	if input.CorrectAnswer != nil {
		question.CorrectAnswer = *input.CorrectAnswer
	}
	if input.IncorrectAnswers != nil {
		question.IncorrectAnswers = *input.IncorrectAnswers
	}

	if err := srv.questionRepo.Update(ctx, question); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrQuestionNotFound.WrapMessage("update question failed")
		}

		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Question updated", "questionID", question.ID)

	return question, nil
}

// Delete removes a question. Deleting an ID that no longer exists succeeds.
func (srv *questionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.questionRepo.Delete(ctx, id); err != nil {
		return errors.WithStack(err)
	}
	srv.logger.Debug("Question deleted", "questionID", id)

	return nil
}

// Search retrieves questions matching the given filter.
func (srv *questionService) Search(ctx context.Context, input *usecase.SearchQuestionsInput) ([]*entity.Question, error) {
	filter := entity.QuestionFilter{
		Category:   input.Category,
		Type:       input.Type,
		Difficulty: input.Difficulty,
	}

	questions, err := srv.questionRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return questions, nil
}

// Import fetches questions from the external provider and, when requested,
// persists them. Provider failures surface immediately; nothing is retried.
func (srv *questionService) Import(ctx context.Context, input *usecase.ImportQuestionsInput) (*usecase.ImportQuestionsOutput, error) {
	srv.logger.Info("Importing external questions", "amount", input.Amount, "persist", input.Persist)

	questions, err := srv.provider.Fetch(ctx, input.Amount)
	if err != nil {
		srv.logger.Error("External question fetch failed", "error", err)

		return nil, domainerrors.ErrExternalService.WrapMessage("import failed")
	}

	if !input.Persist {
		return &usecase.ImportQuestionsOutput{Questions: questions, Persisted: false}, nil
	}

	if err := srv.questionRepo.CreateBatch(ctx, questions); err != nil {
		srv.logger.Error("Failed to persist imported questions", "error", err)

		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Imported questions persisted", "count", len(questions))

	return &usecase.ImportQuestionsOutput{Questions: questions, Persisted: true}, nil
}

func validateCreateQuestion(input *usecase.CreateQuestionInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	required := []struct {
		name  string
		value string
	}{
		{"category", input.Category},
		{"type", input.Type},
		{"difficulty", input.Difficulty},
		{"question", input.Question},
		{"correct_answer", input.CorrectAnswer},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(field.name + " is required")
		}
	}
	if len(input.IncorrectAnswers) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("incorrect_answers is required")
	}

	return nil
}
