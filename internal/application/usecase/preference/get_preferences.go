// Package preference contains user-preference use cases.
package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// GetPreferencesInput represents the input for fetching preferences.
type GetPreferencesInput struct {
	UserID uuid.UUID
}

// GetPreferencesOutput represents the output of fetching preferences.
type GetPreferencesOutput struct {
	Preferences *entity.UserPreferences
}

// GetPreferencesUseCase returns the user's preferences, falling back to the
// defaults when the user never saved any.
type GetPreferencesUseCase struct {
	preferenceRepo adapter.PreferenceRepository
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(preferenceRepo adapter.PreferenceRepository) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		preferenceRepo: preferenceRepo,
	}
}

// Execute fetches the preferences.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context, input GetPreferencesInput) (*GetPreferencesOutput, error) {
	prefs, err := uc.preferenceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return &GetPreferencesOutput{Preferences: entity.DefaultUserPreferences(input.UserID)}, nil
		}
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return &GetPreferencesOutput{Preferences: prefs}, nil
}
