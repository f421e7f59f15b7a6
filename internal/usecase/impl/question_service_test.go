package impl

import (
	"context"
	"testing"

	"trivia/internal/domain/entity"
	domainerrors "trivia/internal/domain/errors"
	"trivia/internal/domain/repository"
	"trivia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockQuestionRepository struct {
	mock.Mock
}

func (m *mockQuestionRepository) FindAll(ctx context.Context) ([]*entity.Question, error) {
	args := m.Called(ctx)
	if questions, ok := args.Get(0).([]*entity.Question); ok {
		return questions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	args := m.Called(ctx, id)
	if question, ok := args.Get(0).(*entity.Question); ok {
		return question, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockQuestionRepository) Search(ctx context.Context, filter entity.QuestionFilter) ([]*entity.Question, error) {
	args := m.Called(ctx, filter)
	if questions, ok := args.Get(0).([]*entity.Question); ok {
		return questions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)

	return args.Error(0)
}

func (m *mockQuestionRepository) CreateBatch(ctx context.Context, questions []*entity.Question) error {
	args := m.Called(ctx, questions)

	return args.Error(0)
}

func (m *mockQuestionRepository) Update(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)

	return args.Error(0)
}

func (m *mockQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockTriviaProvider struct {
	mock.Mock
}

func (m *mockTriviaProvider) Fetch(ctx context.Context, amount int) ([]*entity.Question, error) {
	args := m.Called(ctx, amount)
	if questions, ok := args.Get(0).([]*entity.Question); ok {
		return questions, args.Error(1)
	}

	return nil, args.Error(1)
}

func sampleQuestion() *entity.Question {
	return &entity.Question{
		ID:               uuid.New(),
		Category:         "Science: Computers",
		Type:             "multiple",
		Difficulty:       "easy",
		Question:         "What does CPU stand for?",
		CorrectAnswer:    "Central Processing Unit",
		IncorrectAnswers: []string{"Central Process Unit", "Computer Personal Unit"},
	}
}

// --- CRUD ---

func TestQuestionService_Create_Success(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	questionRepo.On("Create", mock.Anything, mock.MatchedBy(func(q *entity.Question) bool {
		return q.Question == "What does CPU stand for?" && len(q.IncorrectAnswers) == 2
	})).Return(nil)

	question, err := svc.Create(context.Background(), &usecase.CreateQuestionInput{
		Category:         "Science: Computers",
		Type:             "multiple",
		Difficulty:       "easy",
		Question:         "What does CPU stand for?",
		CorrectAnswer:    "Central Processing Unit",
		IncorrectAnswers: []string{"Central Process Unit", "Computer Personal Unit"},
	})

	require.NoError(t, err)
	assert.Equal(t, "easy", question.Difficulty)
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_Create_MissingFields(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	cases := []struct {
		name  string
		input *usecase.CreateQuestionInput
	}{
		{"empty category", &usecase.CreateQuestionInput{
			Type: "multiple", Difficulty: "easy", Question: "q", CorrectAnswer: "a",
			IncorrectAnswers: []string{"b"},
		}},
		{"blank question", &usecase.CreateQuestionInput{
			Category: "c", Type: "multiple", Difficulty: "easy", Question: "   ", CorrectAnswer: "a",
			IncorrectAnswers: []string{"b"},
		}},
		{"no incorrect answers", &usecase.CreateQuestionInput{
			Category: "c", Type: "multiple", Difficulty: "easy", Question: "q", CorrectAnswer: "a",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			question, err := svc.Create(context.Background(), tc.input)

			require.Error(t, err)
			assert.Nil(t, question)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}

	questionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestionService_NilInput(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	question, err := svc.Create(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, question)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	question, err = svc.Update(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Nil(t, question)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	questionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	questionRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestQuestionService_GetByID_NotFound(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	id := uuid.New()
	questionRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrQuestionNotFound)

	question, err := svc.GetByID(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, question)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionNotFound)
}

func TestQuestionService_Update_PartialFields(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	stored := sampleQuestion()
	questionRepo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)

	var saved *entity.Question
	questionRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.Question)
	}).Return(nil)

	newDifficulty := "hard"
	updated, err := svc.Update(context.Background(), stored.ID, &usecase.UpdateQuestionInput{
		Difficulty: &newDifficulty,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "hard", updated.Difficulty)
	// Untouched fields keep their stored values.
	assert.Equal(t, "What does CPU stand for?", saved.Question)
	assert.Equal(t, "multiple", saved.Type)
}

func TestQuestionService_Update_NotFound(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	id := uuid.New()
	questionRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrQuestionNotFound)

	newDifficulty := "hard"
	updated, err := svc.Update(context.Background(), id, &usecase.UpdateQuestionInput{
		Difficulty: &newDifficulty,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionNotFound)
	questionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestQuestionService_Delete_Idempotent(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	id := uuid.New()
	questionRepo.On("Delete", mock.Anything, id).Return(nil)

	// Deleting the same ID twice succeeds both times.
	require.NoError(t, svc.Delete(context.Background(), id))
	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestQuestionService_Search_ForwardsFilter(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	expected := entity.QuestionFilter{Category: "History", Difficulty: "hard"}
	questionRepo.On("Search", mock.Anything, expected).Return([]*entity.Question{sampleQuestion()}, nil)

	questions, err := svc.Search(context.Background(), &usecase.SearchQuestionsInput{
		Category:   "History",
		Difficulty: "hard",
	})

	require.NoError(t, err)
	assert.Len(t, questions, 1)
	questionRepo.AssertExpectations(t)
}

// --- Import ---

func TestQuestionService_Import_WithoutPersist(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	fetched := []*entity.Question{sampleQuestion(), sampleQuestion()}
	provider.On("Fetch", mock.Anything, 2).Return(fetched, nil)

	output, err := svc.Import(context.Background(), &usecase.ImportQuestionsInput{Amount: 2})

	require.NoError(t, err)
	assert.Len(t, output.Questions, 2)
	assert.False(t, output.Persisted)
	questionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestQuestionService_Import_WithPersist(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	fetched := []*entity.Question{sampleQuestion()}
	provider.On("Fetch", mock.Anything, 5).Return(fetched, nil)
	questionRepo.On("CreateBatch", mock.Anything, fetched).Return(nil)

	output, err := svc.Import(context.Background(), &usecase.ImportQuestionsInput{Amount: 5, Persist: true})

	require.NoError(t, err)
	assert.True(t, output.Persisted)
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_Import_ProviderFailure(t *testing.T) {
	questionRepo := new(mockQuestionRepository)
	provider := new(mockTriviaProvider)
	svc := NewQuestionService(questionRepo, provider, newTestLogger())

	provider.On("Fetch", mock.Anything, 5).Return(nil, assert.AnError)

	output, err := svc.Import(context.Background(), &usecase.ImportQuestionsInput{Amount: 5, Persist: true})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrExternalService)
	questionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}
