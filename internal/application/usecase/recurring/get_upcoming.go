// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// DefaultUpcomingDays is the lookahead window when the client does not specify one.
const DefaultUpcomingDays = 30

// GetUpcomingInput represents the input for the upcoming listing.
type GetUpcomingInput struct {
	UserID uuid.UUID
	Days   int // Falls back to DefaultUpcomingDays when not positive
}

// GetUpcomingOutput represents the output of the upcoming listing.
type GetUpcomingOutput struct {
	Recurring []*entity.RecurringTransaction
}

// GetUpcomingUseCase lists active recurring transactions due within the
// lookahead window.
type GetUpcomingUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewGetUpcomingUseCase creates a new GetUpcomingUseCase instance.
func NewGetUpcomingUseCase(recurringRepo adapter.RecurringRepository) *GetUpcomingUseCase {
	return &GetUpcomingUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute lists upcoming recurring transactions ordered by next occurrence.
func (uc *GetUpcomingUseCase) Execute(ctx context.Context, input GetUpcomingInput) (*GetUpcomingOutput, error) {
	days := input.Days
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, days)

	recurring, err := uc.recurringRepo.FindUpcoming(ctx, input.UserID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming recurring transactions: %w", err)
	}

	return &GetUpcomingOutput{Recurring: recurring}, nil
}
