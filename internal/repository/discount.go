package repository

import (
	"context"
	"errors"
	"spicestore-backend/internal/model"

	"gorm.io/gorm"
)

type DiscountRepository interface {
	// FindActiveByCode returns (nil, nil) for unknown and inactive codes
	// alike, so callers cannot distinguish the two.
	FindActiveByCode(ctx context.Context, code string) (*model.DiscountCode, error)
}

type discountRepoImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepoImpl{
		db: db,
	}
}

func (r *discountRepoImpl) FindActiveByCode(ctx context.Context, code string) (*model.DiscountCode, error) {
	var discount model.DiscountCode
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&discount).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &discount, nil
}
