// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair holds an access token and its companion refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims holds the validated identity carried by a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates JWT token pairs. Refresh tokens are
// persisted so they can be rotated and revoked.
type TokenService interface {
	// GenerateTokenPair issues a new access/refresh pair for the user.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// Refresh validates a refresh token, revokes it, and issues a new pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Revoke invalidates a refresh token.
	Revoke(ctx context.Context, refreshToken string) error
}

// TokenRepository persists refresh tokens.
type TokenRepository interface {
	// SaveRefreshToken stores a refresh token for the user.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid reports whether the token is stored, unrevoked and unexpired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// RevokeRefreshToken marks the token revoked.
	RevokeRefreshToken(ctx context.Context, token string) error
}
