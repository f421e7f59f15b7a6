// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"trivia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByHandle retrieves a single user by their handle (case-sensitive).
	FindByHandle(ctx context.Context, handle string) (*entity.User, error)

	// Create persists a new user. The handle uniqueness invariant is enforced
	// here: a duplicate handle surfaces as a conflict error.
	Create(ctx context.Context, user *entity.User) error
}
