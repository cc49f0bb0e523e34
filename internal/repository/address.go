package repository

import (
	"context"
	"errors"
	"spicestore-backend/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	// FindByIDAndUser returns (nil, nil) when the address does not exist or
	// belongs to a different user.
	FindByIDAndUser(ctx context.Context, addressID, userID string) (*model.Address, error)
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) FindByIDAndUser(ctx context.Context, addressID, userID string) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &address, nil
}
