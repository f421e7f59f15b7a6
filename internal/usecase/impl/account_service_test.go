package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trivia/internal/domain/entity"
	domainerrors "trivia/internal/domain/errors"
	"trivia/internal/domain/repository"
	"trivia/internal/domain/service"
	"trivia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByHandle(ctx context.Context, handle string) (*entity.User, error) {
	args := m.Called(ctx, handle)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Register ---

func TestAccountService_Register_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	userRepo.On("FindByHandle", mock.Anything, "alice42").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "secret1").Return("hashed-secret", nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.Handle == "alice42" && user.PasswordHash == "hashed-secret"
	})).Return(nil)
	tokens.On("Issue", mock.Anything).Return("a.b.c", nil)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Handle:   "alice42",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", output.Token)
	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAccountService_NilInput(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	// A nil input is a validation failure, never a panic.
	registerOut, err := svc.Register(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, registerOut)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	loginOut, err := svc.Login(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, loginOut)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	userRepo.AssertNotCalled(t, "FindByHandle", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HandleTooShort(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Handle:   "abc",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	// Nothing may be persisted when validation fails.
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_Register_InvalidPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"starts with digit", "1abcdef"},
		{"contains symbol", "abc-def"},
		{"too long", "a234567890123456789"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := svc.Register(context.Background(), &usecase.RegisterInput{
				Handle:   "alice42",
				Password: tc.password,
			})

			require.Error(t, err)
			assert.Nil(t, output)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HandleTaken(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	existing := &entity.User{ID: uuid.New(), Handle: "alice42"}
	userRepo.On("FindByHandle", mock.Anything, "alice42").Return(existing, nil)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Handle:   "alice42",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	userRepo.On("FindByHandle", mock.Anything, "alice42").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "secret1").Return("", assert.AnError)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Handle:   "alice42",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- Login ---

func TestAccountService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	userID := uuid.New()
	user := &entity.User{ID: userID, Handle: "alice42", PasswordHash: "hashed-secret"}
	userRepo.On("FindByHandle", mock.Anything, "alice42").Return(user, nil)
	hasher.On("Check", "secret1", "hashed-secret").Return(true)
	tokens.On("Issue", userID).Return("a.b.c", nil)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Handle:   "alice42",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", output.Token)
	tokens.AssertExpectations(t)
}

func TestAccountService_Login_UnknownHandleAndWrongPasswordMatch(t *testing.T) {
	// The two failure modes must be indistinguishable to the caller.
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	userRepo.On("FindByHandle", mock.Anything, "ghost123").Return(nil, repository.ErrUserNotFound)

	user := &entity.User{ID: uuid.New(), Handle: "alice42", PasswordHash: "hashed-secret"}
	userRepo.On("FindByHandle", mock.Anything, "alice42").Return(user, nil)
	hasher.On("Check", "wrongpw", "hashed-secret").Return(false)

	_, unknownErr := svc.Login(context.Background(), &usecase.LoginInput{
		Handle:   "ghost123",
		Password: "secret1",
	})
	_, wrongPwErr := svc.Login(context.Background(), &usecase.LoginInput{
		Handle:   "alice42",
		Password: "wrongpw",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, domainerrors.ErrInvalidCredentials)

	var unknownApp, wrongPwApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongPwErr, &wrongPwApp)
	assert.Equal(t, unknownApp.ErrorCode(), wrongPwApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongPwApp.Message())

	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Login_EmptyPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Handle:   "alice42",
		Password: "",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	userRepo.AssertNotCalled(t, "FindByHandle", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterThenLogin_RoundTrip(t *testing.T) {
	// The credentials accepted at registration must log in afterwards.
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := NewAccountService(userRepo, hasher, tokens, newTestLogger())

	var stored *entity.User
	userRepo.On("FindByHandle", mock.Anything, "bob007").Return(nil, repository.ErrUserNotFound).Once()
	hasher.On("Hash", "pass123").Return("hashed-pass123", nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.User)
		stored.ID = uuid.New()
	}).Return(nil)
	tokens.On("Issue", mock.Anything).Return("token-1", nil).Once()

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Handle:   "bob007",
		Password: "pass123",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	userRepo.On("FindByHandle", mock.Anything, "bob007").Return(stored, nil).Once()
	hasher.On("Check", "pass123", "hashed-pass123").Return(true)
	tokens.On("Issue", stored.ID).Return("token-2", nil).Once()

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Handle:   "bob007",
		Password: "pass123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-2", output.Token)
}
