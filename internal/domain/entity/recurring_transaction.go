// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency represents how often a recurring template fires.
type RecurringFrequency string

const (
	RecurringFrequencyDaily   RecurringFrequency = "daily"
	RecurringFrequencyWeekly  RecurringFrequency = "weekly"
	RecurringFrequencyMonthly RecurringFrequency = "monthly"
	RecurringFrequencyYearly  RecurringFrequency = "yearly"
)

// RecurringTransaction is a template describing a transaction that recurs on
// a schedule. Materialization into ledger entries is a manual client action.
type RecurringTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.UUID
	Type        TransactionType
	Frequency   RecurringFrequency
	NextDate    time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	description string,
	categoryID uuid.UUID,
	transactionType TransactionType,
	frequency RecurringFrequency,
	nextDate time.Time,
	isActive bool,
) *RecurringTransaction {
	now := time.Now().UTC()

	return &RecurringTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Type:        transactionType,
		Frequency:   frequency,
		NextDate:    nextDate,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
