// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurring window a budget applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// BudgetStatus classifies how close actual spending is to the budget limit.
type BudgetStatus string

const (
	BudgetStatusOnTrack    BudgetStatus = "on_track"
	BudgetStatusNearLimit  BudgetStatus = "near_limit"
	BudgetStatusOverBudget BudgetStatus = "over_budget"
)

// Budget represents a spending ceiling for a category over a recurring period.
// Spent is a derived value, never stored.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal // The limit
	Period     BudgetPeriod
	StartDate  time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, period BudgetPeriod, startDate time.Time, isActive bool) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  startDate,
		IsActive:   isActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetWithCategory represents a budget with its category display data.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}

// BudgetSummary represents a budget with its derived spending figures.
type BudgetSummary struct {
	Budget   *Budget
	Category *Category
	Spent    decimal.Decimal
	Progress decimal.Decimal // Percentage of the limit already spent
	Status   BudgetStatus
}

// ClassifyBudgetProgress maps a progress percentage to a status.
func ClassifyBudgetProgress(progress decimal.Decimal) BudgetStatus {
	switch {
	case progress.GreaterThan(decimal.NewFromInt(100)):
		return BudgetStatusOverBudget
	case progress.GreaterThan(decimal.NewFromInt(80)):
		return BudgetStatusNearLimit
	default:
		return BudgetStatusOnTrack
	}
}
