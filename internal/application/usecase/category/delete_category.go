// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// Tables that can block a category deletion, in check order.
const (
	usageTableTransactions = "transactions"
	usageTableBudgets      = "budgets"
	usageTableRecurring    = "recurring_transactions"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Force      bool
}

// DeleteCategoryOutput reports what a forced deletion removed.
type DeleteCategoryOutput struct {
	DeletedTransactions int64
	DeletedBudgets      int64
	DeletedRecurring    int64
}

// DeleteCategoryUseCase handles category deletion logic. Without force, a
// deletion is blocked if any transaction, budget or recurring template still
// references the category; the error carries the true row count so clients
// can show it. With force, all referencing rows are removed in one database
// transaction, and the balance contribution of the removed transactions is
// reversed per pocket so cached balances stay consistent with the ledger.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	recurringRepo   adapter.RecurringRepository
	pocketRepo      adapter.PocketRepository
	txManager       adapter.TxManager
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	recurringRepo adapter.RecurringRepository,
	pocketRepo adapter.PocketRepository,
	txManager adapter.TxManager,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		recurringRepo:   recurringRepo,
		pocketRepo:      pocketRepo,
		txManager:       txManager,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to modify category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	if !input.Force {
		if err := uc.checkUsage(ctx, input.UserID, input.CategoryID); err != nil {
			return nil, err
		}

		if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to delete category: %w", err)
		}
		return &DeleteCategoryOutput{}, nil
	}

	return uc.forceDelete(ctx, input.UserID, input.CategoryID)
}

// checkUsage returns a CategoryInUseError for the first table still
// referencing the category.
func (uc *DeleteCategoryUseCase) checkUsage(ctx context.Context, userID, categoryID uuid.UUID) error {
	checks := []struct {
		table string
		count func() (int64, error)
	}{
		{usageTableTransactions, func() (int64, error) {
			return uc.transactionRepo.CountByCategory(ctx, userID, categoryID)
		}},
		{usageTableBudgets, func() (int64, error) {
			return uc.budgetRepo.CountByCategory(ctx, userID, categoryID)
		}},
		{usageTableRecurring, func() (int64, error) {
			return uc.recurringRepo.CountByCategory(ctx, userID, categoryID)
		}},
	}

	for _, check := range checks {
		count, err := check.count()
		if err != nil {
			return fmt.Errorf("failed to check %s usage: %w", check.table, err)
		}
		if count > 0 {
			return &domainerror.CategoryInUseError{
				Table:      check.table,
				UsageCount: count,
			}
		}
	}
	return nil
}

// forceDelete removes the category and everything referencing it.
func (uc *DeleteCategoryUseCase) forceDelete(ctx context.Context, userID, categoryID uuid.UUID) (*DeleteCategoryOutput, error) {
	output := &DeleteCategoryOutput{}

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		// Reverse what the doomed transactions contributed to each pocket
		// before dropping them.
		nets, err := uc.transactionRepo.NetByPocketForCategory(ctx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to compute balance contributions: %w", err)
		}
		for _, net := range nets {
			if net.Net.IsZero() {
				continue
			}
			if err := uc.pocketRepo.AdjustBalance(ctx, net.PocketID, net.Net.Neg()); err != nil {
				return fmt.Errorf("failed to reverse pocket balance: %w", err)
			}
		}

		output.DeletedTransactions, err = uc.transactionRepo.DeleteByCategory(ctx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}

		output.DeletedBudgets, err = uc.budgetRepo.DeleteByCategory(ctx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to delete budgets: %w", err)
		}

		output.DeletedRecurring, err = uc.recurringRepo.DeleteByCategory(ctx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to delete recurring transactions: %w", err)
		}

		if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
