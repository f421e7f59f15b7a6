package postgres

import (
	"context"

	"trivia/internal/domain/entity"
	domainerrors "trivia/internal/domain/errors"
	"trivia/internal/domain/repository"
	"trivia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// questionRepository implements the repository.QuestionRepository interface using GORM.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// FindAll retrieves every stored question.
func (repo *questionRepository) FindAll(ctx context.Context) ([]*entity.Question, error) {
	var models []*model.QuestionModel
	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return toQuestionDomainSlice(models), nil
}

// FindByID retrieves a single question by its unique ID.
func (repo *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	var questionM model.QuestionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&questionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question by id")
	}

	return toQuestionDomain(&questionM), nil
}

// Search retrieves questions matching the non-zero fields of the filter.
func (repo *questionRepository) Search(ctx context.Context, filter entity.QuestionFilter) ([]*entity.Question, error) {
	query := repo.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	var models []*model.QuestionModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search questions")
	}

	return toQuestionDomainSlice(models), nil
}

// Create persists a new question entity to the database.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrQuestionCreationFailed.WrapMessage("missing required question information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.ID = questionM.ID
	question.CreatedAt = questionM.CreatedAt
	question.UpdatedAt = questionM.UpdatedAt

	return nil
}

// CreateBatch persists several questions in one statement.
func (repo *questionRepository) CreateBatch(ctx context.Context, questions []*entity.Question) error {
	if len(questions) == 0 {
		return nil
	}

	models := make([]*model.QuestionModel, 0, len(questions))
	for _, question := range questions {
		models = append(models, fromQuestionDomain(question))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create questions")
	}

	for i, questionM := range models {
		questions[i].ID = questionM.ID
		questions[i].CreatedAt = questionM.CreatedAt
		questions[i].UpdatedAt = questionM.UpdatedAt
	}

	return nil
}

// Update modifies an existing question entity in the database.
func (repo *questionRepository) Update(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	// Select the columns explicitly so fields updated to their zero value
	// are still written; a struct update would silently skip them.
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", question.ID).
		Select("category", "type", "difficulty", "question", "correct_answer", "incorrect_answers").
		Updates(questionM)

	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required question information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update question")
	}

	// If no rows were affected, the question does not exist.
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// Delete removes a question by its ID. Deleting an absent ID is a no-op,
// matching the idempotent delete semantics of the HTTP surface.
func (repo *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuestionModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete question")
	}

	return nil
}

// --- Mapper Functions ---

// toQuestionDomain converts a GORM QuestionModel to a domain Question entity.
func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:               data.ID,
		Category:         data.Category,
		Type:             data.Type,
		Difficulty:       data.Difficulty,
		Question:         data.Question,
		CorrectAnswer:    data.CorrectAnswer,
		IncorrectAnswers: data.IncorrectAnswers,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toQuestionDomainSlice(models []*model.QuestionModel) []*entity.Question {
	questions := make([]*entity.Question, 0, len(models))
	for _, questionM := range models {
		questions = append(questions, toQuestionDomain(questionM))
	}

	return questions
}

// fromQuestionDomain converts a domain Question entity to a GORM QuestionModel for persistence.
func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:               data.ID,
		Category:         data.Category,
		Type:             data.Type,
		Difficulty:       data.Difficulty,
		Question:         data.Question,
		CorrectAnswer:    data.CorrectAnswer,
		IncorrectAnswers: data.IncorrectAnswers,
	}
}
