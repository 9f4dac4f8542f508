// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic. Deleting an
// entry reverses its effect on the pocket balance inside the same database
// transaction.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	pocketRepo      adapter.PocketRepository
	txManager       adapter.TxManager
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	pocketRepo adapter.PocketRepository,
	txManager adapter.TxManager,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		pocketRepo:      pocketRepo,
		txManager:       txManager,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if existing.UserID != input.UserID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.transactionRepo.Delete(ctx, existing.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		if err := uc.pocketRepo.AdjustBalance(ctx, existing.PocketID, existing.SignedAmount().Neg()); err != nil {
			return fmt.Errorf("failed to reverse balance effect: %w", err)
		}
		return nil
	})
}
