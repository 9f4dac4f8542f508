// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// PreferenceRepository defines the interface for user-preference persistence operations.
type PreferenceRepository interface {
	// FindByUser retrieves the stored preferences row for a user. Returns
	// ErrUserNotFound when the user never saved preferences.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// Upsert creates or replaces the user's preferences row.
	Upsert(ctx context.Context, prefs *entity.UserPreferences) error
}
