// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// TokenOutput carries the bearer token issued after a successful
// registration or login. Nothing else leaves the auth flow: in particular
// the stored password hash never crosses this boundary.
type TokenOutput struct {
	Token string `json:"token"`
}

// AccountUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register validates the input, creates the account and returns a token
	// for the new identity. A taken handle yields the conflict error.
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)

	// Login verifies the credentials and returns a fresh token. An unknown
	// handle and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
}
