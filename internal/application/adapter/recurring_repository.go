// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// RecurringFilter defines filter options for listing recurring transactions.
type RecurringFilter struct {
	UserID   uuid.UUID
	IsActive *bool
	Type     *entity.TransactionType
}

// RecurringRepository defines the interface for recurring-transaction persistence operations.
type RecurringRepository interface {
	// Create inserts a new recurring transaction.
	Create(ctx context.Context, recurring *entity.RecurringTransaction) error

	// FindByID retrieves a recurring transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error)

	// FindByFilter retrieves recurring transactions matching the filter,
	// ordered by next date ascending.
	FindByFilter(ctx context.Context, filter RecurringFilter) ([]*entity.RecurringTransaction, error)

	// FindUpcoming retrieves active recurring transactions whose next date is
	// on or before the cutoff, ordered by next date ascending.
	FindUpcoming(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*entity.RecurringTransaction, error)

	// Update persists changes to an existing recurring transaction.
	Update(ctx context.Context, recurring *entity.RecurringTransaction) error

	// Delete removes a recurring transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategory counts recurring transactions referencing the category.
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)

	// DeleteByCategory removes every recurring transaction referencing the category.
	DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)
}
