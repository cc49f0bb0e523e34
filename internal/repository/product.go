package repository

import (
	"context"
	"errors"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	List(ctx context.Context, params dto.ProductListParams) ([]model.Product, int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	FindVariant(ctx context.Context, variantID string) (*model.ProductVariant, error)
	// DecrementStock reduces a variant's stock inside tx, guarded so the
	// quantity can never go negative. Returns false when stock was short.
	DecrementStock(ctx context.Context, tx *gorm.DB, variantID string, qty int) (bool, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) List(ctx context.Context, params dto.ProductListParams) ([]model.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("is_active = ?", true)

	if params.Category != "" {
		base = base.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		base = base.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			db = db.Where("is_active = ?", true)
			if params.MinPrice > 0 {
				db = db.Where("price_paise >= ?", params.MinPrice)
			}
			if params.MaxPrice > 0 {
				db = db.Where("price_paise <= ?", params.MaxPrice)
			}
			return db.Order("price_paise ASC")
		}).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit)

	if params.SortBy != "price" {
		query = query.Order(params.SortBy + " ASC")
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", "is_active = ?", true).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindVariant(ctx context.Context, variantID string) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("id = ?", variantID).
		First(&variant).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &variant, nil
}

func (r *productRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, variantID string, qty int) (bool, error) {
	result := tx.WithContext(ctx).Model(&model.ProductVariant{}).
		Where("id = ? AND stock_qty >= ?", variantID, qty).
		Update("stock_qty", gorm.Expr("stock_qty - ?", qty))

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
