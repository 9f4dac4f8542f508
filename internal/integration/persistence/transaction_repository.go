// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a new transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := dbFrom(ctx, r.db).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := dbFrom(ctx, r.db).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithRefs retrieves a transaction with its category and pocket by ID.
func (r *transactionRepository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error) {
	var transactionModel model.TransactionModel
	result := dbFrom(ctx, r.db).
		Preload("Category").
		Preload("Pocket").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithRefs(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithRefs, error) {
	query := dbFrom(ctx, r.db).Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PocketID != nil {
		query = query.Where("pocket_id = ?", *filter.PocketID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	query = query.
		Preload("Category").
		Preload("Pocket").
		Order("date DESC, created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}
	return transactions, nil
}

// Update persists changes to an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := dbFrom(ctx, r.db).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// GetMonthSummary aggregates totals for transactions dated inside [start, end].
func (r *transactionRepository) GetMonthSummary(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.MonthSummary, error) {
	base := func() *gorm.DB {
		return dbFrom(ctx, r.db).Model(&model.TransactionModel{}).
			Where("user_id = ?", userID).
			Where("date >= ? AND date <= ?", start, end)
	}

	var income struct {
		Total decimal.Decimal
	}
	if err := base().
		Where("type = ?", string(entity.TransactionTypeIncome)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&income).Error; err != nil {
		return nil, err
	}

	var expenses struct {
		Total decimal.Decimal
	}
	if err := base().
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&expenses).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := base().Count(&count).Error; err != nil {
		return nil, err
	}

	return &entity.MonthSummary{
		TotalIncome:      income.Total,
		TotalExpenses:    expenses.Total,
		NetIncome:        income.Total.Sub(expenses.Total),
		TransactionCount: int(count),
	}, nil
}

// SumExpensesByCategorySince sums the amounts of expense transactions in the
// category dated on or after since.
func (r *transactionRepository) SumExpensesByCategorySince(ctx context.Context, userID, categoryID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := dbFrom(ctx, r.db).Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Where("date >= ?", since).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// CountByCategory counts transactions referencing the category.
func (r *transactionRepository) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// NetByPocketForCategory returns, per pocket, the net signed amount the
// category's transactions contribute to that pocket's balance.
func (r *transactionRepository) NetByPocketForCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]adapter.PocketNet, error) {
	var rows []struct {
		PocketID uuid.UUID       `gorm:"column:pocket_id"`
		Net      decimal.Decimal `gorm:"column:net"`
	}
	err := dbFrom(ctx, r.db).Model(&model.TransactionModel{}).
		Select("pocket_id, COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0) as net").
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Group("pocket_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	nets := make([]adapter.PocketNet, len(rows))
	for i, row := range rows {
		nets[i] = adapter.PocketNet{PocketID: row.PocketID, Net: row.Net}
	}
	return nets, nil
}

// DeleteByCategory removes every transaction referencing the category.
func (r *transactionRepository) DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ReassignPocket moves every transaction from one pocket to another.
func (r *transactionRepository) ReassignPocket(ctx context.Context, userID, fromPocketID, toPocketID uuid.UUID) (int64, error) {
	result := dbFrom(ctx, r.db).Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Where("pocket_id = ?", fromPocketID).
		Updates(map[string]interface{}{
			"pocket_id":  toPocketID,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindByDateRange retrieves transactions dated inside [start, end], oldest first.
func (r *transactionRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithRefs, error) {
	var transactionModels []model.TransactionModel
	err := dbFrom(ctx, r.db).
		Preload("Category").
		Preload("Pocket").
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, created_at ASC").
		Find(&transactionModels).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}
	return transactions, nil
}
