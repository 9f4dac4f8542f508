// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type" binding:"required,oneof=expense income"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryInUseResponse reports why a deletion was blocked. CanForceDelete
// tells the client it may retry with ?force=true after confirmation.
type CategoryInUseResponse struct {
	Error          string `json:"error"`
	Code           string `json:"code"`
	Table          string `json:"table"`
	CanForceDelete bool   `json:"canForceDelete"`
	UsageCount     int64  `json:"usageCount"`
}

// ForceDeleteCategoryResponse reports what a forced deletion removed.
type ForceDeleteCategoryResponse struct {
	DeletedTransactions int64 `json:"deleted_transactions"`
	DeletedBudgets      int64 `json:"deleted_budgets"`
	DeletedRecurring    int64 `json:"deleted_recurring"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Icon:      cat.Icon,
		Color:     cat.Color,
		Type:      string(cat.Type),
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: responses}
}
