// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	PocketID      *uuid.UUID
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic. The old balance
// effect is reversed and the new one applied inside one database transaction,
// which also covers moves between pockets.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	pocketRepo      adapter.PocketRepository
	txManager       adapter.TxManager
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	pocketRepo adapter.PocketRepository,
	txManager adapter.TxManager,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		pocketRepo:      pocketRepo,
		txManager:       txManager,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	oldPocketID := existing.PocketID
	oldEffect := existing.SignedAmount()

	updated := *existing
	if input.Date != nil {
		updated.Date = *input.Date
	}
	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		updated.Description = *input.Description
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		updated.Amount = *input.Amount
	}
	if input.Type != nil {
		if !isValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		updated.Type = *input.Type
	}

	var category *entity.Category
	if input.CategoryID != nil {
		category, err = uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || category.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		updated.CategoryID = *input.CategoryID
	} else {
		category, _ = uc.categoryRepo.FindByID(ctx, updated.CategoryID)
	}

	var pocket *entity.Pocket
	if input.PocketID != nil {
		pocket, err = uc.pocketRepo.FindByID(ctx, *input.PocketID)
		if err != nil || pocket.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnPocketNotFound,
				"pocket not found",
				domainerror.ErrPocketNotFoundForTransaction,
			)
		}
		updated.PocketID = *input.PocketID
	} else {
		pocket, _ = uc.pocketRepo.FindByID(ctx, updated.PocketID)
	}

	updated.UpdatedAt = time.Now().UTC()
	newEffect := updated.SignedAmount()

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.transactionRepo.Update(ctx, &updated); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		if err := uc.pocketRepo.AdjustBalance(ctx, oldPocketID, oldEffect.Neg()); err != nil {
			return fmt.Errorf("failed to reverse old balance effect: %w", err)
		}
		if err := uc.pocketRepo.AdjustBalance(ctx, updated.PocketID, newEffect); err != nil {
			return fmt.Errorf("failed to apply new balance effect: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(&updated, category, pocket),
	}, nil
}
