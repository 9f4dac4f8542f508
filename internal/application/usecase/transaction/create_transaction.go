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

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	PocketID    *uuid.UUID // Falls back to the user's default pocket when nil
	RecurringID *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic. The ledger
// write and the pocket balance adjustment happen inside one database
// transaction so the cached balance never drifts from the ledger.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	pocketRepo      adapter.PocketRepository
	txManager       adapter.TxManager
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	pocketRepo adapter.PocketRepository,
	txManager adapter.TxManager,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		pocketRepo:      pocketRepo,
		txManager:       txManager,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil || category.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	pocket, err := uc.resolvePocket(ctx, input.UserID, input.PocketID)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Date,
		input.Description,
		input.Amount,
		input.Type,
		input.CategoryID,
		pocket.ID,
		input.RecurringID,
	)

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		if err := uc.pocketRepo.AdjustBalance(ctx, pocket.ID, transaction.SignedAmount()); err != nil {
			return fmt.Errorf("failed to adjust pocket balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction, category, pocket),
	}, nil
}

// resolvePocket returns the requested pocket after an ownership check, or the
// user's default pocket when no pocket was requested.
func (uc *CreateTransactionUseCase) resolvePocket(ctx context.Context, userID uuid.UUID, pocketID *uuid.UUID) (*entity.Pocket, error) {
	if pocketID == nil {
		pocket, err := uc.pocketRepo.FindDefault(ctx, userID)
		if err != nil {
			return nil, domainerror.NewPocketError(
				domainerror.ErrCodeNoDefaultPocket,
				"no default pocket",
				domainerror.ErrNoDefaultPocket,
			)
		}
		return pocket, nil
	}

	pocket, err := uc.pocketRepo.FindByID(ctx, *pocketID)
	if err != nil || pocket.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnPocketNotFound,
			"pocket not found",
			domainerror.ErrPocketNotFoundForTransaction,
		)
	}
	return pocket, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
