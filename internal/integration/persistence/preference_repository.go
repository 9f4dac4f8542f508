// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// preferenceRepository implements the adapter.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository instance.
func NewPreferenceRepository(db *gorm.DB) adapter.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByUser retrieves the stored preferences row for a user.
func (r *preferenceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	var prefsModel model.UserPreferencesModel
	result := dbFrom(ctx, r.db).Where("user_id = ?", userID).First(&prefsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return prefsModel.ToEntity(), nil
}

// Upsert creates or replaces the user's preferences row.
func (r *preferenceRepository) Upsert(ctx context.Context, prefs *entity.UserPreferences) error {
	prefsModel := model.PreferencesFromEntity(prefs)
	return dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"currency", "date_format", "theme", "notifications_enabled", "updated_at",
			}),
		}).
		Create(prefsModel).Error
}
