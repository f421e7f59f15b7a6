// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	domainerrors "trivia/internal/domain/errors"
	"trivia/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key holding the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. A missing or
// malformed Authorization header is an authentication failure (401); a
// well-formed header whose token does not verify is an authorization
// failure (403). The distinction lets clients tell "log in first" apart
// from "your token is bad".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token verification failed")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// OptionalAuthenticate lets unauthenticated requests through untouched,
// but a request that does present an Authorization header must carry a
// valid token. Handlers can check for the user ID on the context to see
// whether the caller authenticated.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		return m.Authenticate(next)(c)
	}
}

func extractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrAuthRequired.WrapMessage("missing authorization header")
	}

	// Only the prefix decides between 401 and 403: a header that does start
	// with "Bearer " but carries an empty remainder still goes to Verify,
	// which rejects it as an invalid token.
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", domainerrors.ErrAuthRequired.WrapMessage("authorization header is not a bearer token")
	}

	return tokenString, nil
}
