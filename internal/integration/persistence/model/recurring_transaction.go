// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table in the database.
type RecurringTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	NextDate    time.Time       `gorm:"type:date;not null;index"`
	IsActive    bool            `gorm:"default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		Type:        entity.TransactionType(m.Type),
		Frequency:   entity.RecurringFrequency(m.Frequency),
		NextDate:    m.NextDate,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecurringFromEntity creates a RecurringTransactionModel from a domain entity.
func RecurringFromEntity(recurring *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:          recurring.ID,
		UserID:      recurring.UserID,
		Amount:      recurring.Amount,
		Description: recurring.Description,
		CategoryID:  recurring.CategoryID,
		Type:        string(recurring.Type),
		Frequency:   string(recurring.Frequency),
		NextDate:    recurring.NextDate,
		IsActive:    recurring.IsActive,
		CreatedAt:   recurring.CreatedAt,
		UpdatedAt:   recurring.UpdatedAt,
	}
}
