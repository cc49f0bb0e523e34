package repository

import (
	"context"
	"errors"
	"spicestore-backend/internal/model"

	"gorm.io/gorm"
)

type BusinessAccountRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.BusinessAccount, error)
}

type businessAccountRepoImpl struct {
	db *gorm.DB
}

func NewBusinessAccountRepository(db *gorm.DB) BusinessAccountRepository {
	return &businessAccountRepoImpl{
		db: db,
	}
}

func (r *businessAccountRepoImpl) FindByUserID(ctx context.Context, userID string) (*model.BusinessAccount, error) {
	var account model.BusinessAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

type QuoteRepository interface {
	ListByBusinessAccount(ctx context.Context, businessAccountID string) ([]model.Quote, error)
	// Create inserts the quote and its items in one go.
	Create(ctx context.Context, quote *model.Quote) error
}

type quoteRepoImpl struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepoImpl{
		db: db,
	}
}

func (r *quoteRepoImpl) ListByBusinessAccount(ctx context.Context, businessAccountID string) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("business_account_id = ?", businessAccountID).
		Order("created_at DESC").
		Find(&quotes).Error

	if err != nil {
		return nil, err
	}

	return quotes, nil
}

func (r *quoteRepoImpl) Create(ctx context.Context, quote *model.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}
