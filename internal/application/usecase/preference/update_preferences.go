// Package preference contains user-preference use cases.
package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for updating preferences. Nil
// fields are left unchanged; unspecified fields keep their current (or
// default) values.
type UpdatePreferencesInput struct {
	UserID               uuid.UUID
	Currency             *string
	DateFormat           *string
	Theme                *string
	NotificationsEnabled *bool
}

// UpdatePreferencesOutput represents the output of updating preferences.
type UpdatePreferencesOutput struct {
	Preferences *entity.UserPreferences
}

// UpdatePreferencesUseCase merges the requested changes over the stored (or
// default) preferences and persists the result.
type UpdatePreferencesUseCase struct {
	preferenceRepo adapter.PreferenceRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(preferenceRepo adapter.PreferenceRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		preferenceRepo: preferenceRepo,
	}
}

// Execute performs the preference update.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	prefs, err := uc.preferenceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
		prefs = entity.DefaultUserPreferences(input.UserID)
		prefs.CreatedAt = time.Now().UTC()
	}

	if input.Currency != nil {
		prefs.Currency = *input.Currency
	}
	if input.DateFormat != nil {
		prefs.DateFormat = *input.DateFormat
	}
	if input.Theme != nil {
		prefs.Theme = *input.Theme
	}
	if input.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *input.NotificationsEnabled
	}
	prefs.UpdatedAt = time.Now().UTC()

	if err := uc.preferenceRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return &UpdatePreferencesOutput{Preferences: prefs}, nil
}
