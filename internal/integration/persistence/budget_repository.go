// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create inserts a new budget.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := dbFrom(ctx, r.db).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := dbFrom(ctx, r.db).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByFilter retrieves budgets matching the filter with category data
// preloaded, newest first.
func (r *budgetRepository) FindByFilter(ctx context.Context, filter adapter.BudgetFilter) ([]*entity.BudgetWithCategory, error) {
	query := dbFrom(ctx, r.db).Model(&model.BudgetModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Period != nil {
		query = query.Where("period = ?", string(*filter.Period))
	}

	var budgetModels []model.BudgetModel
	err := query.
		Preload("Category").
		Order("created_at DESC").
		Find(&budgetModels).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*entity.BudgetWithCategory, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntityWithCategory()
	}
	return budgets, nil
}

// Update persists changes to an existing budget.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := dbFrom(ctx, r.db).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// CountByCategory counts budgets referencing the category.
func (r *budgetRepository) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&model.BudgetModel{}).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByCategory removes every budget referencing the category.
func (r *budgetRepository) DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Delete(&model.BudgetModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
