// Package report contains reporting and export use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// DefaultSummaryDays is the summary lookback when the client gives no range.
const DefaultSummaryDays = 30

var oneHundred = decimal.NewFromInt(100)

// GetSummaryInput represents the input for a range summary.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// TransactionCounts splits the transaction count by type.
type TransactionCounts struct {
	Total   int
	Income  int
	Expense int
}

// GetSummaryOutput represents aggregated totals for a date range.
type GetSummaryOutput struct {
	StartDate        time.Time
	EndDate          time.Time
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	SavingsRate      decimal.Decimal // Percentage of income kept, 0 without income
	TransactionCount TransactionCounts
}

// GetSummaryUseCase aggregates income, expense and net totals over an
// arbitrary date range.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the range summary. An empty range defaults to the trailing
// thirty days.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() || end.IsZero() {
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -DefaultSummaryDays)
	}

	rows, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	counts := TransactionCounts{Total: len(rows)}
	for _, row := range rows {
		switch row.Transaction.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(row.Transaction.Amount)
			counts.Income++
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(row.Transaction.Amount)
			counts.Expense++
		}
	}

	netIncome := totalIncome.Sub(totalExpenses)
	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = netIncome.Div(totalIncome).Mul(oneHundred).Round(2)
	}

	return &GetSummaryOutput{
		StartDate:        start,
		EndDate:          end,
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetIncome:        netIncome,
		SavingsRate:      savingsRate,
		TransactionCount: counts,
	}, nil
}
