// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	"trivia/internal/domain/entity"
	domainerrors "trivia/internal/domain/errors"
	"trivia/internal/domain/repository"
	"trivia/internal/domain/service"
	"trivia/internal/usecase"

	"github.com/pkg/errors"
)

// Validation rules for registration. The handle doubles as the login
// identifier; the password rule applies at registration only.
var (
	handlePattern   = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z]\w{5,15}$`)
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete registration process: validation,
// duplicate check, password hashing, persistence and token issuance.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	srv.logger.Info("Starting registration", "handle", input.Handle)

	// Report the first violated rule and stop; nothing is persisted on failure.
	if !handlePattern.MatchString(input.Handle) {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("handle must be 4 to 20 alphanumeric characters")
	}
	if !passwordPattern.MatchString(input.Password) {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("password must start with a letter followed by 5 to 15 letters, digits or underscores")
	}

	// Check for an existing account. This lookup is advisory: the unique
	// index on the handle column is what actually guarantees uniqueness
	// against concurrent registrations, and a constraint violation on
	// Create below surfaces as the same conflict error.
	_, err := srv.userRepo.FindByHandle(ctx, input.Handle)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to look up handle during registration", "error", err)

		return nil, errors.Wrap(err, "failed to look up handle during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	newUser := &entity.User{
		Handle:       input.Handle,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.WithStack(err)
	}

	token, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		srv.logger.Error("Failed to issue token after registration", "error", err, "userID", newUser.ID)

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}
	srv.logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.TokenOutput{Token: token}, nil
}

// Login orchestrates the login process. An unknown handle and a wrong
// password produce the identical error so account existence never leaks.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	srv.logger.Debug("Starting login", "handle", input.Handle)

	if !handlePattern.MatchString(input.Handle) {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("handle must be 4 to 20 alphanumeric characters")
	}
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("password is required")
	}

	user, err := srv.userRepo.FindByHandle(ctx, input.Handle)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.logger.Error("Failed to look up handle during login", "error", err)

		return nil, errors.Wrap(err, "failed to look up handle during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "handle", input.Handle)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.logger.Error("Failed to issue token after login", "error", err, "userID", user.ID)

		return nil, errors.Wrap(err, "failed to issue token after login")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.TokenOutput{Token: token}, nil
}
