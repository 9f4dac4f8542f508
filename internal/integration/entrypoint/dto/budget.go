// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Amount     string `json:"amount" binding:"required"`
	Period     string `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate  string `json:"start_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount   *string `json:"amount,omitempty"`
	Period   *string `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// BudgetCategoryResponse represents category display data on a budget.
type BudgetCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string                  `json:"id"`
	CategoryID string                  `json:"category_id"`
	Amount     string                  `json:"amount"`
	Period     string                  `json:"period"`
	StartDate  string                  `json:"start_date"`
	IsActive   bool                    `json:"is_active"`
	Category   *BudgetCategoryResponse `json:"category,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetSummaryEntryResponse represents one budget's derived spending figures.
type BudgetSummaryEntryResponse struct {
	BudgetResponse
	Spent    string `json:"spent"`
	Progress string `json:"progress"`
	Status   string `json:"status"`
}

// BudgetSummaryResponse represents the response for the budget summary.
type BudgetSummaryResponse struct {
	Budgets []BudgetSummaryEntryResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget, category *entity.Category) BudgetResponse {
	response := BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Amount:     budget.Amount.StringFixed(2),
		Period:     string(budget.Period),
		StartDate:  budget.StartDate.Format("2006-01-02"),
		IsActive:   budget.IsActive,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
	if category != nil {
		response.Category = &BudgetCategoryResponse{
			ID:    category.ID.String(),
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		}
	}
	return response
}

// ToBudgetListResponse converts budgets with categories to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithCategory) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, bc := range budgets {
		responses[i] = ToBudgetResponse(bc.Budget, bc.Category)
	}
	return BudgetListResponse{Budgets: responses}
}

// ToBudgetSummaryResponse converts budget summaries to a BudgetSummaryResponse.
func ToBudgetSummaryResponse(summaries []*entity.BudgetSummary) BudgetSummaryResponse {
	responses := make([]BudgetSummaryEntryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = BudgetSummaryEntryResponse{
			BudgetResponse: ToBudgetResponse(summary.Budget, summary.Category),
			Spent:          summary.Spent.StringFixed(2),
			Progress:       summary.Progress.StringFixed(2),
			Status:         string(summary.Status),
		}
	}
	return BudgetSummaryResponse{Budgets: responses}
}
