// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// BudgetFilter defines filter options for listing budgets.
type BudgetFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Period     *entity.BudgetPeriod
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create inserts a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByFilter retrieves budgets matching the filter, newest first, with
	// category display data resolved. Budgets whose category no longer exists
	// come back with a nil Category.
	FindByFilter(ctx context.Context, filter BudgetFilter) ([]*entity.BudgetWithCategory, error)

	// Update persists changes to an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategory counts budgets referencing the category.
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)

	// DeleteByCategory removes every budget referencing the category.
	DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)
}
