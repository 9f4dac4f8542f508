// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// CategoryOutput carries category display data attached to a transaction.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Icon  string
	Color string
	Type  entity.CategoryType
}

// PocketOutput carries pocket display data attached to a transaction.
type PocketOutput struct {
	ID   uuid.UUID
	Name string
	Icon string
}

// TransactionOutput represents a transaction returned by use cases.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	PocketID    uuid.UUID
	RecurringID *uuid.UUID
	Category    *CategoryOutput
	Pocket      *PocketOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toTransactionOutput builds a TransactionOutput from an entity and optional
// resolved references.
func toTransactionOutput(txn *entity.Transaction, category *entity.Category, pocket *entity.Pocket) *TransactionOutput {
	output := &TransactionOutput{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Date:        txn.Date,
		Description: txn.Description,
		Amount:      txn.Amount,
		Type:        txn.Type,
		CategoryID:  txn.CategoryID,
		PocketID:    txn.PocketID,
		RecurringID: txn.RecurringID,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if category != nil {
		output.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
			Type:  category.Type,
		}
	}
	if pocket != nil {
		output.Pocket = &PocketOutput{
			ID:   pocket.ID,
			Name: pocket.Name,
			Icon: pocket.Icon,
		}
	}
	return output
}
