// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// UpdateRecurringInput represents the input for recurring-transaction updates.
// Nil fields are left unchanged.
type UpdateRecurringInput struct {
	RecurringID uuid.UUID
	UserID      uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	CategoryID  *uuid.UUID
	Frequency   *entity.RecurringFrequency
	NextDate    *time.Time
}

// UpdateRecurringOutput represents the output of a recurring-transaction update.
type UpdateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// UpdateRecurringUseCase handles recurring-transaction update logic.
type UpdateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
	categoryRepo  adapter.CategoryRepository
}

// NewUpdateRecurringUseCase creates a new UpdateRecurringUseCase instance.
func NewUpdateRecurringUseCase(
	recurringRepo adapter.RecurringRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateRecurringUseCase {
	return &UpdateRecurringUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute performs the recurring-transaction update.
func (uc *UpdateRecurringUseCase) Execute(ctx context.Context, input UpdateRecurringInput) (*UpdateRecurringOutput, error) {
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

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				"amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		recurring.Amount = *input.Amount
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				"description is required",
				nil,
			)
		}
		recurring.Description = description
	}
	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || category.UserID != input.UserID {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		recurring.CategoryID = *input.CategoryID
	}
	if input.Frequency != nil {
		if !isValidFrequency(*input.Frequency) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidRecurringFrequency,
				"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
				domainerror.ErrInvalidRecurringFrequency,
			)
		}
		recurring.Frequency = *input.Frequency
	}
	if input.NextDate != nil {
		recurring.NextDate = *input.NextDate
	}
	recurring.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}

	return &UpdateRecurringOutput{Recurring: recurring}, nil
}
