// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPocketIcon is the default icon for pockets.
const DefaultPocketIcon = "wallet"

// Pocket represents a named sub-account holding a cached balance. The balance
// is a materialized aggregate of the transaction ledger: every ledger mutation
// must be paired with a balance adjustment inside the same database
// transaction.
type Pocket struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	Icon      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPocket creates a new Pocket entity with a zero balance.
func NewPocket(userID uuid.UUID, name, icon string, isDefault bool) *Pocket {
	now := time.Now().UTC()

	return &Pocket{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Balance:   decimal.Zero,
		Icon:      icon,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
