// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// ToggleRecurringInput represents the input for toggling a recurring transaction.
type ToggleRecurringInput struct {
	RecurringID uuid.UUID
	UserID      uuid.UUID
}

// ToggleRecurringOutput represents the output of toggling a recurring transaction.
type ToggleRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// ToggleRecurringUseCase flips the active flag of a recurring transaction.
type ToggleRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewToggleRecurringUseCase creates a new ToggleRecurringUseCase instance.
func NewToggleRecurringUseCase(recurringRepo adapter.RecurringRepository) *ToggleRecurringUseCase {
	return &ToggleRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleRecurringUseCase) Execute(ctx context.Context, input ToggleRecurringInput) (*ToggleRecurringOutput, error) {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.RecurringID)
	if err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring transaction not found",
			domainerror.ErrRecurringNotFound,
		)
	}

	if recurring.UserID != input.UserID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeNotAuthorizedRecurring,
			"not authorized to modify recurring transaction",
			domainerror.ErrNotAuthorizedToModifyRecurring,
		)
	}

	recurring.IsActive = !recurring.IsActive
	recurring.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to toggle recurring transaction: %w", err)
	}

	return &ToggleRecurringOutput{Recurring: recurring}, nil
}
