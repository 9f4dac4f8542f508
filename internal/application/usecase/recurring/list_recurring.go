// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// ListRecurringInput represents the input for listing recurring transactions.
type ListRecurringInput struct {
	UserID   uuid.UUID
	IsActive *bool
	Type     *entity.TransactionType
}

// ListRecurringOutput represents the output of listing recurring transactions.
type ListRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// ListRecurringUseCase handles recurring-transaction listing logic.
type ListRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(recurringRepo adapter.RecurringRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute lists recurring transactions ordered by next occurrence.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	recurring, err := uc.recurringRepo.FindByFilter(ctx, adapter.RecurringFilter{
		UserID:   input.UserID,
		IsActive: input.IsActive,
		Type:     input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	return &ListRecurringOutput{Recurring: recurring}, nil
}
