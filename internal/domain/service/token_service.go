package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by bearer tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are stateless: nothing is persisted and revocation before expiry is
// not supported.
type TokenService interface {
	// Issue creates a signed token for the given user, valid for the
	// configured lifetime from the moment of issuance.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token string and returns its claims. It fails for
	// malformed strings, bad signatures and expired tokens; expiry is a hard
	// cutoff with no clock-skew compensation.
	Verify(tokenString string) (*Claims, error)
}
