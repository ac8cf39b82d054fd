package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts the issuance and validation of authentication tokens.
type TokenService interface {
	// GenerateTokens creates an access/refresh token pair for a user. The
	// roles claim carries the user's profile type for stateless authorization.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret and returns the parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
