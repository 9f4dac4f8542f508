// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring-transaction repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create inserts a new recurring transaction.
func (r *recurringRepository) Create(ctx context.Context, recurring *entity.RecurringTransaction) error {
	recurringModel := model.RecurringFromEntity(recurring)
	result := dbFrom(ctx, r.db).Create(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring transaction by its ID.
func (r *recurringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error) {
	var recurringModel model.RecurringTransactionModel
	result := dbFrom(ctx, r.db).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByFilter retrieves recurring transactions matching the filter ordered by
// next occurrence.
func (r *recurringRepository) FindByFilter(ctx context.Context, filter adapter.RecurringFilter) ([]*entity.RecurringTransaction, error) {
	query := dbFrom(ctx, r.db).Where("user_id = ?", filter.UserID)
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var recurringModels []model.RecurringTransactionModel
	result := query.Order("next_date ASC").Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recurrings := make([]*entity.RecurringTransaction, len(recurringModels))
	for i, rm := range recurringModels {
		recurrings[i] = rm.ToEntity()
	}
	return recurrings, nil
}

// FindUpcoming retrieves active recurring transactions due on or before cutoff.
func (r *recurringRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Where("next_date <= ?", cutoff).
		Order("next_date ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recurrings := make([]*entity.RecurringTransaction, len(recurringModels))
	for i, rm := range recurringModels {
		recurrings[i] = rm.ToEntity()
	}
	return recurrings, nil
}

// Update persists changes to an existing recurring transaction.
func (r *recurringRepository) Update(ctx context.Context, recurring *entity.RecurringTransaction) error {
	result := dbFrom(ctx, r.db).
		Model(&model.RecurringTransactionModel{}).
		Where("id = ?", recurring.ID).
		Updates(map[string]interface{}{
			"amount":      recurring.Amount,
			"description": recurring.Description,
			"category_id": recurring.CategoryID,
			"type":        string(recurring.Type),
			"frequency":   string(recurring.Frequency),
			"next_date":   recurring.NextDate,
			"is_active":   recurring.IsActive,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}

// Delete removes a recurring transaction.
func (r *recurringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Where("id = ?", id).Delete(&model.RecurringTransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}

// CountByCategory counts recurring transactions referencing the category.
func (r *recurringRepository) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&model.RecurringTransactionModel{}).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByCategory removes every recurring transaction referencing the category.
func (r *recurringRepository) DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Delete(&model.RecurringTransactionModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
