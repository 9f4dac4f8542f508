// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
)

// GetMonthSummaryInput represents the input for the month summary.
type GetMonthSummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// GetMonthSummaryOutput represents aggregated totals for a calendar month.
type GetMonthSummaryOutput struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int
}

// GetMonthSummaryUseCase computes income, expense and net totals for one
// calendar month.
type GetMonthSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the month summary.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	start := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	summary, err := uc.transactionRepo.GetMonthSummary(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute month summary: %w", err)
	}

	return &GetMonthSummaryOutput{
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		NetIncome:        summary.NetIncome,
		TransactionCount: summary.TransactionCount,
	}, nil
}
