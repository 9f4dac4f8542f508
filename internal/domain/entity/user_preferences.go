// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default preference values returned when a user has never saved preferences.
const (
	DefaultCurrency   = "USD"
	DefaultDateFormat = "MM/dd/yyyy"
	DefaultTheme      = "light"
)

// UserPreferences holds per-user display and notification settings.
type UserPreferences struct {
	UserID               uuid.UUID
	Currency             string
	DateFormat           string
	Theme                string
	NotificationsEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DefaultUserPreferences returns the defaults for a user without a stored row.
func DefaultUserPreferences(userID uuid.UUID) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		Currency:             DefaultCurrency,
		DateFormat:           DefaultDateFormat,
		Theme:                DefaultTheme,
		NotificationsEnabled: true,
	}
}
