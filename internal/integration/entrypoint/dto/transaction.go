// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketfin/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	PocketID    *string `json:"pocket_id,omitempty" binding:"omitempty,uuid"`
	RecurringID *string `json:"recurring_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	PocketID    *string `json:"pocket_id,omitempty" binding:"omitempty,uuid"`
}

// TransactionCategoryResponse represents category display data on a transaction.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// TransactionPocketResponse represents pocket display data on a transaction.
type TransactionPocketResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  string                       `json:"category_id"`
	PocketID    string                       `json:"pocket_id"`
	RecurringID *string                      `json:"recurring_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Pocket      *TransactionPocketResponse   `json:"pocket,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// MonthSummaryResponse represents aggregated totals for a calendar month.
type MonthSummaryResponse struct {
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	NetIncome        string `json:"net_income"`
	TransactionCount int    `json:"transaction_count"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          output.ID.String(),
		Date:        output.Date.Format("2006-01-02"),
		Description: output.Description,
		Amount:      output.Amount.StringFixed(2),
		Type:        string(output.Type),
		CategoryID:  output.CategoryID.String(),
		PocketID:    output.PocketID.String(),
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
	if output.RecurringID != nil {
		id := output.RecurringID.String()
		response.RecurringID = &id
	}
	if output.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    output.Category.ID.String(),
			Name:  output.Category.Name,
			Icon:  output.Category.Icon,
			Color: output.Category.Color,
			Type:  string(output.Category.Type),
		}
	}
	if output.Pocket != nil {
		response.Pocket = &TransactionPocketResponse{
			ID:   output.Pocket.ID.String(),
			Name: output.Pocket.Name,
			Icon: output.Pocket.Icon,
		}
	}
	return response
}

// ToTransactionListResponse converts a list of TransactionOutput to a TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{Transactions: transactions}
}
