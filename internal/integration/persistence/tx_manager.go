// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocketfin/backend/internal/application/adapter"
)

// txKey is the context key carrying an open gorm transaction.
type txKey struct{}

// gormTxManager implements the adapter.TxManager interface.
type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager instance.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &gormTxManager{
		db: db,
	}
}

// Do runs fn inside a single database transaction. The open transaction is
// placed in the context so every repository call made with the derived
// context joins the same atomic unit.
func (m *gormTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom returns the transaction carried by the context, or the repository's
// own handle when no transaction is open.
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
