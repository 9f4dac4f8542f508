// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

// pocketRepository implements the adapter.PocketRepository interface.
type pocketRepository struct {
	db *gorm.DB
}

// NewPocketRepository creates a new pocket repository instance.
func NewPocketRepository(db *gorm.DB) adapter.PocketRepository {
	return &pocketRepository{
		db: db,
	}
}

// Create inserts a new pocket.
func (r *pocketRepository) Create(ctx context.Context, pocket *entity.Pocket) error {
	pocketModel := model.PocketFromEntity(pocket)
	result := dbFrom(ctx, r.db).Create(pocketModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a pocket by its ID.
func (r *pocketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pocket, error) {
	var pocketModel model.PocketModel
	result := dbFrom(ctx, r.db).Where("id = ?", id).First(&pocketModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPocketNotFound
		}
		return nil, result.Error
	}
	return pocketModel.ToEntity(), nil
}

// FindByUser retrieves all pockets for a user ordered by creation time.
func (r *pocketRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Pocket, error) {
	var pocketModels []model.PocketModel
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&pocketModels)
	if result.Error != nil {
		return nil, result.Error
	}

	pockets := make([]*entity.Pocket, len(pocketModels))
	for i, pm := range pocketModels {
		pockets[i] = pm.ToEntity()
	}
	return pockets, nil
}

// FindDefault retrieves the user's default pocket.
func (r *pocketRepository) FindDefault(ctx context.Context, userID uuid.UUID) (*entity.Pocket, error) {
	var pocketModel model.PocketModel
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Where("is_default = ?", true).
		First(&pocketModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoDefaultPocket
		}
		return nil, result.Error
	}
	return pocketModel.ToEntity(), nil
}

// CountByUser counts the user's pockets.
func (r *pocketRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&model.PocketModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update persists name, icon and default-flag changes. The cached balance is
// deliberately not writable here; it only moves through AdjustBalance and
// WithdrawGuarded.
func (r *pocketRepository) Update(ctx context.Context, pocket *entity.Pocket) error {
	result := dbFrom(ctx, r.db).Model(&model.PocketModel{}).
		Where("id = ?", pocket.ID).
		Updates(map[string]interface{}{
			"name":       pocket.Name,
			"icon":       pocket.Icon,
			"is_default": pocket.IsDefault,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPocketNotFound
	}
	return nil
}

// ClearDefault unsets the default flag on all of the user's pockets.
func (r *pocketRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&model.PocketModel{}).
		Where("user_id = ?", userID).
		Where("is_default = ?", true).
		Updates(map[string]interface{}{
			"is_default": false,
			"updated_at": time.Now().UTC(),
		}).Error
}

// AdjustBalance atomically adds delta to the pocket's cached balance. The
// increment happens database-side so concurrent adjustments cannot lose
// updates.
func (r *pocketRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := dbFrom(ctx, r.db).Model(&model.PocketModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPocketNotFound
	}
	return nil
}

// WithdrawGuarded atomically subtracts amount from the pocket's balance,
// failing when the balance would go negative. The floor is enforced in the
// WHERE clause so the check and the decrement are one statement.
func (r *pocketRepository) WithdrawGuarded(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := dbFrom(ctx, r.db).Model(&model.PocketModel{}).
		Where("id = ?", id).
		Where("balance >= ?", amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing pocket from an underfunded one.
		var count int64
		if err := dbFrom(ctx, r.db).Model(&model.PocketModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrPocketNotFound
		}
		return domainerror.ErrInsufficientFunds
	}
	return nil
}

// Delete removes a pocket row.
func (r *pocketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Where("id = ?", id).Delete(&model.PocketModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPocketNotFound
	}
	return nil
}
