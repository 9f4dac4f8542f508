// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocketfin/backend/internal/domain/entity"
)

// UpdatePreferencesRequest represents the request body for updating preferences.
type UpdatePreferencesRequest struct {
	Currency             *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	DateFormat           *string `json:"date_format,omitempty" binding:"omitempty,min=1,max=20"`
	Theme                *string `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

// PreferencesResponse represents the user's preferences in API responses.
type PreferencesResponse struct {
	Currency             string `json:"currency"`
	DateFormat           string `json:"date_format"`
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// ToPreferencesResponse converts a domain UserPreferences entity to a PreferencesResponse DTO.
func ToPreferencesResponse(prefs *entity.UserPreferences) PreferencesResponse {
	return PreferencesResponse{
		Currency:             prefs.Currency,
		DateFormat:           prefs.DateFormat,
		Theme:                prefs.Theme,
		NotificationsEnabled: prefs.NotificationsEnabled,
	}
}
