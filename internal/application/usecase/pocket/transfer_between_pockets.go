// Package pocket contains pocket-related use cases.
package pocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// TransferInput represents the input for a transfer between pockets.
type TransferInput struct {
	UserID       uuid.UUID
	FromPocketID uuid.UUID
	ToPocketID   uuid.UUID
	Amount       decimal.Decimal
}

// TransferOutput represents the resulting pocket balances after a transfer.
type TransferOutput struct {
	FromPocket *entity.Pocket
	ToPocket   *entity.Pocket
}

// TransferUseCase moves funds between two pockets of the same user. The
// withdraw and the deposit happen in one database transaction; the withdraw
// is guarded so the source balance can never go negative.
type TransferUseCase struct {
	pocketRepo adapter.PocketRepository
	txManager  adapter.TxManager
}

// NewTransferUseCase creates a new TransferUseCase instance.
func NewTransferUseCase(pocketRepo adapter.PocketRepository, txManager adapter.TxManager) *TransferUseCase {
	return &TransferUseCase{
		pocketRepo: pocketRepo,
		txManager:  txManager,
	}
}

// Execute performs the transfer.
func (uc *TransferUseCase) Execute(ctx context.Context, input TransferInput) (*TransferOutput, error) {
	if input.FromPocketID == input.ToPocketID {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodeInvalidTransfer,
			"source and destination pockets must differ",
			domainerror.ErrInvalidTransfer,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodeInvalidTransfer,
			"amount must be positive",
			domainerror.ErrInvalidTransfer,
		)
	}

	from, err := uc.pocketRepo.FindByID(ctx, input.FromPocketID)
	if err != nil || from.UserID != input.UserID {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodePocketNotFound,
			"source pocket not found",
			domainerror.ErrPocketNotFound,
		)
	}

	to, err := uc.pocketRepo.FindByID(ctx, input.ToPocketID)
	if err != nil || to.UserID != input.UserID {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodePocketNotFound,
			"destination pocket not found",
			domainerror.ErrPocketNotFound,
		)
	}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.pocketRepo.WithdrawGuarded(ctx, from.ID, input.Amount); err != nil {
			if errors.Is(err, domainerror.ErrInsufficientFunds) {
				return domainerror.NewPocketError(
					domainerror.ErrCodeInsufficientFunds,
					"insufficient funds in source pocket",
					domainerror.ErrInsufficientFunds,
				)
			}
			return fmt.Errorf("failed to withdraw from source pocket: %w", err)
		}
		if err := uc.pocketRepo.AdjustBalance(ctx, to.ID, input.Amount); err != nil {
			return fmt.Errorf("failed to deposit into destination pocket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	from, err = uc.pocketRepo.FindByID(ctx, input.FromPocketID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload source pocket: %w", err)
	}
	to, err = uc.pocketRepo.FindByID(ctx, input.ToPocketID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload destination pocket: %w", err)
	}

	return &TransferOutput{FromPocket: from, ToPocket: to}, nil
}
