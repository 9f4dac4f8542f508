// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// CreatePocketRequest represents the request body for pocket creation.
type CreatePocketRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=50"`
	Icon      string `json:"icon,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// UpdatePocketRequest represents the request body for pocket update.
type UpdatePocketRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Icon      *string `json:"icon,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

// TransferRequest represents the request body for a transfer between pockets.
type TransferRequest struct {
	FromPocketID string `json:"from_pocket_id" binding:"required,uuid"`
	ToPocketID   string `json:"to_pocket_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required"`
}

// PocketResponse represents a single pocket in API responses.
type PocketResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PocketListResponse represents the response for listing pockets.
type PocketListResponse struct {
	Pockets []PocketResponse `json:"pockets"`
}

// TransferResponse represents the resulting balances after a transfer.
type TransferResponse struct {
	FromPocket PocketResponse `json:"from_pocket"`
	ToPocket   PocketResponse `json:"to_pocket"`
}

// DeletePocketResponse reports the outcome of a pocket deletion.
type DeletePocketResponse struct {
	ReassignedTransactions int64 `json:"reassigned_transactions"`
}

// ToPocketResponse converts a domain Pocket entity to a PocketResponse DTO.
func ToPocketResponse(pocket *entity.Pocket) PocketResponse {
	return PocketResponse{
		ID:        pocket.ID.String(),
		Name:      pocket.Name,
		Balance:   pocket.Balance.StringFixed(2),
		Icon:      pocket.Icon,
		IsDefault: pocket.IsDefault,
		CreatedAt: pocket.CreatedAt,
		UpdatedAt: pocket.UpdatedAt,
	}
}

// ToPocketListResponse converts a list of pockets to a PocketListResponse.
func ToPocketListResponse(pockets []*entity.Pocket) PocketListResponse {
	responses := make([]PocketResponse, len(pockets))
	for i, pocket := range pockets {
		responses[i] = ToPocketResponse(pocket)
	}
	return PocketListResponse{Pockets: responses}
}
