// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for recurring-transaction creation.
type CreateRecurringRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Frequency   string `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	NextDate    string `json:"next_date" binding:"required"`
}

// UpdateRecurringRequest represents the request body for recurring-transaction update.
type UpdateRecurringRequest struct {
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Frequency   *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	NextDate    *string `json:"next_date,omitempty"`
}

// RecurringResponse represents a single recurring transaction in API responses.
type RecurringResponse struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id"`
	Type        string    `json:"type"`
	Frequency   string    `json:"frequency"`
	NextDate    string    `json:"next_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecurringListResponse represents the response for listing recurring transactions.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring_transactions"`
}

// ToRecurringResponse converts a domain RecurringTransaction entity to a RecurringResponse DTO.
func ToRecurringResponse(recurring *entity.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		ID:          recurring.ID.String(),
		Amount:      recurring.Amount.StringFixed(2),
		Description: recurring.Description,
		CategoryID:  recurring.CategoryID.String(),
		Type:        string(recurring.Type),
		Frequency:   string(recurring.Frequency),
		NextDate:    recurring.NextDate.Format("2006-01-02"),
		IsActive:    recurring.IsActive,
		CreatedAt:   recurring.CreatedAt,
		UpdatedAt:   recurring.UpdatedAt,
	}
}

// ToRecurringListResponse converts recurring transactions to a RecurringListResponse.
func ToRecurringListResponse(recurring []*entity.RecurringTransaction) RecurringListResponse {
	responses := make([]RecurringResponse, len(recurring))
	for i, r := range recurring {
		responses[i] = ToRecurringResponse(r)
	}
	return RecurringListResponse{Recurring: responses}
}
