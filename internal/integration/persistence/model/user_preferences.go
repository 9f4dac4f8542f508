// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// UserPreferencesModel represents the user_preferences table in the database.
type UserPreferencesModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Currency             string    `gorm:"type:varchar(3);not null"`
	DateFormat           string    `gorm:"type:varchar(20);not null"`
	Theme                string    `gorm:"type:varchar(10);not null"`
	NotificationsEnabled bool      `gorm:"default:true"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserPreferencesModel.
func (UserPreferencesModel) TableName() string {
	return "user_preferences"
}

// ToEntity converts a UserPreferencesModel to a domain entity.
func (m *UserPreferencesModel) ToEntity() *entity.UserPreferences {
	return &entity.UserPreferences{
		UserID:               m.UserID,
		Currency:             m.Currency,
		DateFormat:           m.DateFormat,
		Theme:                m.Theme,
		NotificationsEnabled: m.NotificationsEnabled,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// PreferencesFromEntity creates a UserPreferencesModel from a domain entity.
func PreferencesFromEntity(prefs *entity.UserPreferences) *UserPreferencesModel {
	return &UserPreferencesModel{
		UserID:               prefs.UserID,
		Currency:             prefs.Currency,
		DateFormat:           prefs.DateFormat,
		Theme:                prefs.Theme,
		NotificationsEnabled: prefs.NotificationsEnabled,
		CreatedAt:            prefs.CreatedAt,
		UpdatedAt:            prefs.UpdatedAt,
	}
}
