// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for recurring-transaction deletion.
type DeleteRecurringInput struct {
	RecurringID uuid.UUID
	UserID      uuid.UUID
}

// DeleteRecurringUseCase handles recurring-transaction deletion logic.
// Ledger entries already materialized from the template are left untouched.
type DeleteRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring-transaction deletion.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) error {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.RecurringID)
	if err != nil {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring transaction not found",
			domainerror.ErrRecurringNotFound,
		)
	}

	if recurring.UserID != input.UserID {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeNotAuthorizedRecurring,
			"not authorized to modify recurring transaction",
			domainerror.ErrNotAuthorizedToModifyRecurring,
		)
	}

	if err := uc.recurringRepo.Delete(ctx, input.RecurringID); err != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	return nil
}
