// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single ledger entry. Amount is always the positive
// magnitude; the sign applied to the pocket balance is derived from Type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  uuid.UUID
	PocketID    uuid.UUID
	RecurringID *uuid.UUID // Set when the entry was materialized from a recurring template
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	pocketID uuid.UUID,
	recurringID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		PocketID:    pocketID,
		RecurringID: recurringID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the amount signed by the transaction type:
// positive for income, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionWithRefs represents a transaction with its category and pocket
// display data resolved.
type TransactionWithRefs struct {
	Transaction *Transaction
	Category    *Category
	Pocket      *Pocket
}

// MonthSummary represents aggregated totals for a calendar month.
type MonthSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int
}
