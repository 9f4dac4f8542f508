// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// GetBudgetSummaryInput represents the input for the budget summary.
type GetBudgetSummaryInput struct {
	UserID uuid.UUID
	Now    time.Time // Zero means time.Now
}

// GetBudgetSummaryOutput represents the output of the budget summary.
type GetBudgetSummaryOutput struct {
	Summaries []*entity.BudgetSummary
}

// GetBudgetSummaryUseCase derives spending figures for every active budget.
// Spent is the sum of expense magnitudes in the budget's category since the
// start of the current period window; it is computed from the ledger on every
// call, never stored.
type GetBudgetSummaryUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetSummaryUseCase {
	return &GetBudgetSummaryUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the budget summary.
func (uc *GetBudgetSummaryUseCase) Execute(ctx context.Context, input GetBudgetSummaryInput) (*GetBudgetSummaryOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	budgets, err := uc.budgetRepo.FindByFilter(ctx, adapter.BudgetFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	summaries := make([]*entity.BudgetSummary, 0, len(budgets))
	for _, bc := range budgets {
		if !bc.Budget.IsActive {
			continue
		}
		// A budget whose category is gone has nothing to measure against.
		if bc.Category == nil {
			continue
		}

		since := PeriodStart(bc.Budget.Period, bc.Budget.StartDate, now)
		spent, err := uc.transactionRepo.SumExpensesByCategorySince(ctx, input.UserID, bc.Budget.CategoryID, since)
		if err != nil {
			return nil, fmt.Errorf("failed to sum spending: %w", err)
		}

		progress := decimal.Zero
		if bc.Budget.Amount.IsPositive() {
			progress = spent.Div(bc.Budget.Amount).Mul(oneHundred).Round(2)
		}

		summaries = append(summaries, &entity.BudgetSummary{
			Budget:   bc.Budget,
			Category: bc.Category,
			Spent:    spent,
			Progress: progress,
			Status:   entity.ClassifyBudgetProgress(progress),
		})
	}

	return &GetBudgetSummaryOutput{Summaries: summaries}, nil
}
