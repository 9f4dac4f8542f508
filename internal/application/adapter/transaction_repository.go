// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	PocketID   *uuid.UUID
	Type       *entity.TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}

// PocketNet is the net signed amount a set of transactions contributes to a
// single pocket's balance.
type PocketNet struct {
	PocketID uuid.UUID
	Net      decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create inserts a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithRefs retrieves a transaction with its category and pocket.
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error)

	// FindByFilter retrieves transactions matching the filter, newest first,
	// with category and pocket display data resolved.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithRefs, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetMonthSummary aggregates totals for transactions dated inside [start, end].
	GetMonthSummary(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.MonthSummary, error)

	// SumExpensesByCategorySince sums the amounts of expense transactions in
	// the category dated on or after since.
	SumExpensesByCategorySince(ctx context.Context, userID, categoryID uuid.UUID, since time.Time) (decimal.Decimal, error)

	// CountByCategory counts transactions referencing the category.
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)

	// NetByPocketForCategory returns, per pocket, the net signed amount the
	// category's transactions contribute to that pocket's balance.
	NetByPocketForCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]PocketNet, error)

	// DeleteByCategory removes every transaction referencing the category.
	// Returns the number of deleted rows.
	DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)

	// ReassignPocket moves every transaction from one pocket to another.
	ReassignPocket(ctx context.Context, userID, fromPocketID, toPocketID uuid.UUID) (int64, error)

	// FindByDateRange retrieves transactions dated inside [start, end] with
	// category display data resolved, oldest first.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithRefs, error)
}
