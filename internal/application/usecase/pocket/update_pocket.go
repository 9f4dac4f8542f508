// Package pocket contains pocket-related use cases.
package pocket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// UpdatePocketInput represents the input for pocket updates. Nil fields are
// left unchanged.
type UpdatePocketInput struct {
	PocketID  uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Icon      *string
	IsDefault *bool
}

// UpdatePocketOutput represents the output of a pocket update.
type UpdatePocketOutput struct {
	Pocket *entity.Pocket
}

// UpdatePocketUseCase handles pocket update logic. Promoting a pocket to
// default demotes the previous default in the same database transaction.
type UpdatePocketUseCase struct {
	pocketRepo adapter.PocketRepository
	txManager  adapter.TxManager
}

// NewUpdatePocketUseCase creates a new UpdatePocketUseCase instance.
func NewUpdatePocketUseCase(pocketRepo adapter.PocketRepository, txManager adapter.TxManager) *UpdatePocketUseCase {
	return &UpdatePocketUseCase{
		pocketRepo: pocketRepo,
		txManager:  txManager,
	}
}

// Execute performs the pocket update.
func (uc *UpdatePocketUseCase) Execute(ctx context.Context, input UpdatePocketInput) (*UpdatePocketOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewPocketError(
				domainerror.ErrCodeMissingPocketFields,
				"name is required",
				nil,
			)
		}
		pocket.Name = name
	}
	if input.Icon != nil {
		pocket.Icon = *input.Icon
	}

	promoting := input.IsDefault != nil && *input.IsDefault && !pocket.IsDefault
	if input.IsDefault != nil && *input.IsDefault {
		pocket.IsDefault = true
	}
	pocket.UpdatedAt = time.Now().UTC()

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if promoting {
			if err := uc.pocketRepo.ClearDefault(ctx, input.UserID); err != nil {
				return fmt.Errorf("failed to clear default pocket: %w", err)
			}
		}
		if err := uc.pocketRepo.Update(ctx, pocket); err != nil {
			return fmt.Errorf("failed to update pocket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdatePocketOutput{Pocket: pocket}, nil
}
