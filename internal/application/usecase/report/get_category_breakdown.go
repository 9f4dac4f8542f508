// Package report contains reporting and export use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Type      entity.TransactionType // Defaults to expense
}

// CategoryBreakdownEntry represents one category's share of the total.
type CategoryBreakdownEntry struct {
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Color      string
	Total      decimal.Decimal
	Percentage decimal.Decimal
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Total      decimal.Decimal
	Categories []CategoryBreakdownEntry
}

// GetCategoryBreakdownUseCase aggregates spending (or income) per category
// over a date range, largest share first.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the category breakdown.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() || end.IsZero() {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	transactionType := input.Type
	if transactionType == "" {
		transactionType = entity.TransactionTypeExpense
	}

	rows, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	total := decimal.Zero
	byCategory := make(map[uuid.UUID]*CategoryBreakdownEntry)
	for _, row := range rows {
		if row.Transaction.Type != transactionType {
			continue
		}
		total = total.Add(row.Transaction.Amount)

		entry, ok := byCategory[row.Transaction.CategoryID]
		if !ok {
			entry = &CategoryBreakdownEntry{CategoryID: row.Transaction.CategoryID}
			if row.Category != nil {
				entry.Name = row.Category.Name
				entry.Icon = row.Category.Icon
				entry.Color = row.Category.Color
			}
			byCategory[row.Transaction.CategoryID] = entry
		}
		entry.Total = entry.Total.Add(row.Transaction.Amount)
	}

	categories := make([]CategoryBreakdownEntry, 0, len(byCategory))
	for _, entry := range byCategory {
		if total.IsPositive() {
			entry.Percentage = entry.Total.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		categories = append(categories, *entry)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	return &GetCategoryBreakdownOutput{
		Total:      total,
		Categories: categories,
	}, nil
}
