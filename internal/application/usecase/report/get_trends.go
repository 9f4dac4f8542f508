// Package report contains reporting and export use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// GetTrendsInput represents the input for the trend listing.
type GetTrendsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetTrendsOutput represents the output of the trend listing.
type GetTrendsOutput struct {
	Transactions []*entity.TransactionWithRefs
}

// GetTrendsUseCase lists the transactions in a date range in ascending date
// order, the raw series clients chart trends from.
type GetTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the trend series. An empty range defaults to the trailing
// thirty days.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() || end.IsZero() {
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -DefaultSummaryDays)
	}

	rows, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetTrendsOutput{Transactions: rows}, nil
}
