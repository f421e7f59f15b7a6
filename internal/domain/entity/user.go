// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account identified by a unique handle.
// The handle is immutable after creation and globally unique (case-sensitive);
// the database enforces the uniqueness invariant.
type User struct {
	ID           uuid.UUID // Unique identifier, generated at creation.
	Handle       string    // Login name: 4-20 alphanumeric characters.
	PasswordHash string    // bcrypt hash of the password. Never serialized to clients.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
