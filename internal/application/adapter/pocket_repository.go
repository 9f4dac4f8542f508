// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// PocketRepository defines the interface for pocket persistence operations.
// Balance mutations are expressed as database-side atomic increments so two
// concurrent requests against the same pocket cannot lose updates.
type PocketRepository interface {
	// Create inserts a new pocket.
	Create(ctx context.Context, pocket *entity.Pocket) error

	// FindByID retrieves a pocket by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pocket, error)

	// FindByUser retrieves all pockets for a user ordered by creation time.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pocket, error)

	// FindDefault retrieves the user's default pocket.
	FindDefault(ctx context.Context, userID uuid.UUID) (*entity.Pocket, error)

	// CountByUser counts the user's pockets.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update persists name, icon and default-flag changes.
	Update(ctx context.Context, pocket *entity.Pocket) error

	// ClearDefault unsets the default flag on all of the user's pockets.
	ClearDefault(ctx context.Context, userID uuid.UUID) error

	// AdjustBalance atomically adds delta (which may be negative) to the
	// pocket's cached balance.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// WithdrawGuarded atomically subtracts amount from the pocket's balance,
	// failing with ErrInsufficientFunds if the balance would go negative.
	WithdrawGuarded(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// Delete removes a pocket row.
	Delete(ctx context.Context, id uuid.UUID) error
}
