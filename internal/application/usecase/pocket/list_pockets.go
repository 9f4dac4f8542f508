// Package pocket contains pocket-related use cases.
package pocket

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// ListPocketsInput represents the input for listing pockets.
type ListPocketsInput struct {
	UserID uuid.UUID
}

// ListPocketsOutput represents the output of listing pockets.
type ListPocketsOutput struct {
	Pockets []*entity.Pocket
}

// ListPocketsUseCase handles pocket listing logic.
type ListPocketsUseCase struct {
	pocketRepo adapter.PocketRepository
}

// NewListPocketsUseCase creates a new ListPocketsUseCase instance.
func NewListPocketsUseCase(pocketRepo adapter.PocketRepository) *ListPocketsUseCase {
	return &ListPocketsUseCase{
		pocketRepo: pocketRepo,
	}
}

// Execute lists the user's pockets in creation order.
func (uc *ListPocketsUseCase) Execute(ctx context.Context, input ListPocketsInput) (*ListPocketsOutput, error) {
	pockets, err := uc.pocketRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pockets: %w", err)
	}
	return &ListPocketsOutput{Pockets: pockets}, nil
}
