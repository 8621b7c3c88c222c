package repository

import (
	"context"
	"errors"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultHoldRepository struct {
	DB *gorm.DB
}

func NewDefaultHoldRepository(db *gorm.DB) *DefaultHoldRepository {
	return &DefaultHoldRepository{DB: db}
}

func (r *DefaultHoldRepository) CreateHold(ctx context.Context, hold *domain.Hold) (int64, error) {
	holdModel := mappers.ToGORMHold(hold)
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).Create(holdModel).Error; err != nil {
		return 0, err
	}
	return holdModel.ID, nil
}

func (r *DefaultHoldRepository) GetHoldByID(ctx context.Context, holdID int64) (*domain.Hold, error) {
	var holdModel models.HoldModel
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).First(&holdModel, "id = ?", holdID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHoldNotFound
		}
		return nil, err
	}
	return mappers.ToDomainHold(&holdModel), nil
}

func (r *DefaultHoldRepository) MarkHoldUsed(ctx context.Context, holdID int64) (bool, error) {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.HoldModel{}).
		Where("id = ? AND status = ?", holdID, domain.HoldStatusActive).
		Update("status", domain.HoldStatusUsed)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// MarkHoldExpired refuses both non-active holds and holds whose deadline has
// not passed yet, so a sweeper racing the order path can never expire a hold
// that was just converted.
func (r *DefaultHoldRepository) MarkHoldExpired(ctx context.Context, holdID int64, now time.Time) (bool, error) {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.HoldModel{}).
		Where("id = ? AND status = ? AND expires_at <= ?", holdID, domain.HoldStatusActive, now).
		Update("status", domain.HoldStatusExpired)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultHoldRepository) FindExpiredHolds(ctx context.Context, now time.Time) ([]*domain.Hold, error) {
	var holdModels []models.HoldModel
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Where("status = ? AND expires_at <= ?", domain.HoldStatusActive, now).
		Order("expires_at ASC").
		Find(&holdModels).Error; err != nil {
		return nil, err
	}

	holds := make([]*domain.Hold, 0, len(holdModels))
	for i := range holdModels {
		holds = append(holds, mappers.ToDomainHold(&holdModels[i]))
	}
	return holds, nil
}
