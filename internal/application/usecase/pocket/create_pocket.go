// Package pocket contains pocket-related use cases.
package pocket

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// CreatePocketInput represents the input for pocket creation.
type CreatePocketInput struct {
	UserID    uuid.UUID
	Name      string
	Icon      string
	IsDefault bool
}

// CreatePocketOutput represents the output of pocket creation.
type CreatePocketOutput struct {
	Pocket *entity.Pocket
}

// CreatePocketUseCase handles pocket creation logic. A user's first pocket
// becomes the default regardless of the flag, so ledger writes always have a
// fallback pocket.
type CreatePocketUseCase struct {
	pocketRepo adapter.PocketRepository
	txManager  adapter.TxManager
}

// NewCreatePocketUseCase creates a new CreatePocketUseCase instance.
func NewCreatePocketUseCase(pocketRepo adapter.PocketRepository, txManager adapter.TxManager) *CreatePocketUseCase {
	return &CreatePocketUseCase{
		pocketRepo: pocketRepo,
		txManager:  txManager,
	}
}

// Execute performs the pocket creation.
func (uc *CreatePocketUseCase) Execute(ctx context.Context, input CreatePocketInput) (*CreatePocketOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPocketError(
			domainerror.ErrCodeMissingPocketFields,
			"name is required",
			nil,
		)
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultPocketIcon
	}

	count, err := uc.pocketRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pockets: %w", err)
	}

	isDefault := input.IsDefault || count == 0
	pocket := entity.NewPocket(input.UserID, name, icon, isDefault)

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if isDefault {
			if err := uc.pocketRepo.ClearDefault(ctx, input.UserID); err != nil {
				return fmt.Errorf("failed to clear default pocket: %w", err)
			}
		}
		if err := uc.pocketRepo.Create(ctx, pocket); err != nil {
			return fmt.Errorf("failed to create pocket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreatePocketOutput{Pocket: pocket}, nil
}
