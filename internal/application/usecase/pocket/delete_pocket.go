// Package pocket contains pocket-related use cases.
package pocket

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// DeletePocketInput represents the input for pocket deletion.
type DeletePocketInput struct {
	PocketID uuid.UUID
	UserID   uuid.UUID
}

// DeletePocketOutput represents the output of pocket deletion.
type DeletePocketOutput struct {
	ReassignedTransactions int64
}

// DeletePocketUseCase handles pocket deletion logic. The default pocket can
// never be deleted. Transactions of the deleted pocket are reassigned to the
// default pocket and its remaining balance moves there too, so total funds
// are conserved.
type DeletePocketUseCase struct {
	pocketRepo      adapter.PocketRepository
	transactionRepo adapter.TransactionRepository
	txManager       adapter.TxManager
}

// NewDeletePocketUseCase creates a new DeletePocketUseCase instance.
func NewDeletePocketUseCase(
	pocketRepo adapter.PocketRepository,
	transactionRepo adapter.TransactionRepository,
	txManager adapter.TxManager,
) *DeletePocketUseCase {
	return &DeletePocketUseCase{
		pocketRepo:      pocketRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Execute performs the pocket deletion.
func (uc *DeletePocketUseCase) Execute(ctx context.Context, input DeletePocketInput) (*DeletePocketOutput, error) {
	pocket, err := uc.pocketRepo.FindByID(ctx, input.PocketID)
	if err != nil {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodePocketNotFound,
			"pocket not found",
			domainerror.ErrPocketNotFound,
		)
	}

	if pocket.UserID != input.UserID {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodeNotAuthorizedPocket,
			"not authorized to modify pocket",
			domainerror.ErrNotAuthorizedToModifyPocket,
		)
	}

	if pocket.IsDefault {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodeCannotDeleteDefault,
			"cannot delete the default pocket",
			domainerror.ErrCannotDeleteDefaultPocket,
		)
	}

	defaultPocket, err := uc.pocketRepo.FindDefault(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodeNoDefaultPocket,
			"no default pocket",
			domainerror.ErrNoDefaultPocket,
		)
	}

	var reassigned int64
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		moved, err := uc.transactionRepo.ReassignPocket(ctx, input.UserID, pocket.ID, defaultPocket.ID)
		if err != nil {
			return fmt.Errorf("failed to reassign transactions: %w", err)
		}
		reassigned = moved

		if !pocket.Balance.IsZero() {
			if err := uc.pocketRepo.AdjustBalance(ctx, defaultPocket.ID, pocket.Balance); err != nil {
				return fmt.Errorf("failed to move remaining balance: %w", err)
			}
		}

		if err := uc.pocketRepo.Delete(ctx, pocket.ID); err != nil {
			return fmt.Errorf("failed to delete pocket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeletePocketOutput{ReassignedTransactions: reassigned}, nil
}
