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

// CreateRecurringInput represents the input for recurring-transaction creation.
type CreateRecurringInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.UUID
	Type        entity.TransactionType
	Frequency   entity.RecurringFrequency
	NextDate    time.Time
}

// CreateRecurringOutput represents the output of recurring-transaction creation.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase handles recurring-transaction creation logic.
type CreateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
	categoryRepo  adapter.CategoryRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(
	recurringRepo adapter.RecurringRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute performs the recurring-transaction creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"description is required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !isValidFrequency(input.Frequency) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringFrequency,
			"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidRecurringFrequency,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil || category.UserID != input.UserID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	recurring := entity.NewRecurringTransaction(
		input.UserID,
		input.Amount,
		strings.TrimSpace(input.Description),
		input.CategoryID,
		input.Type,
		input.Frequency,
		input.NextDate,
		true,
	)
	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringOutput{Recurring: recurring}, nil
}

// isValidFrequency validates the recurring frequency.
func isValidFrequency(frequency entity.RecurringFrequency) bool {
	switch frequency {
	case entity.RecurringFrequencyDaily,
		entity.RecurringFrequencyWeekly,
		entity.RecurringFrequencyMonthly,
		entity.RecurringFrequencyYearly:
		return true
	}
	return false
}
