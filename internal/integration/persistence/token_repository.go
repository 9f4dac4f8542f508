// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// tokenRepository implements the adapter.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new refresh-token repository instance.
func NewTokenRepository(db *gorm.DB) adapter.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveRefreshToken stores a refresh token for the user.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := &model.RefreshTokenModel{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		Revoked:   false,
		CreatedAt: time.Now().UTC(),
	}
	return dbFrom(ctx, r.db).Create(tokenModel).Error
}

// IsRefreshTokenValid reports whether the token is stored, unrevoked and unexpired.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var tokenModel model.RefreshTokenModel
	result := dbFrom(ctx, r.db).Where("token = ?", token).First(&tokenModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	if tokenModel.Revoked {
		return false, nil
	}
	if time.Now().UTC().After(tokenModel.ExpiresAt) {
		return false, nil
	}
	return true, nil
}

// RevokeRefreshToken marks the token revoked.
func (r *tokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	return dbFrom(ctx, r.db).Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}
