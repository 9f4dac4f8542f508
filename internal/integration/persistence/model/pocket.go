// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// PocketModel represents the pockets table in the database.
type PocketModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Icon      string          `gorm:"type:varchar(50);not null"`
	IsDefault bool            `gorm:"default:false"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PocketModel.
func (PocketModel) TableName() string {
	return "pockets"
}

// ToEntity converts a PocketModel to a domain Pocket entity.
func (m *PocketModel) ToEntity() *entity.Pocket {
	return &entity.Pocket{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Balance:   m.Balance,
		Icon:      m.Icon,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PocketFromEntity creates a PocketModel from a domain Pocket entity.
func PocketFromEntity(pocket *entity.Pocket) *PocketModel {
	return &PocketModel{
		ID:        pocket.ID,
		UserID:    pocket.UserID,
		Name:      pocket.Name,
		Balance:   pocket.Balance,
		Icon:      pocket.Icon,
		IsDefault: pocket.IsDefault,
		CreatedAt: pocket.CreatedAt,
		UpdatedAt: pocket.UpdatedAt,
	}
}
