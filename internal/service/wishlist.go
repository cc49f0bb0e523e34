package service

import (
	"context"
	"fmt"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"

	"github.com/google/uuid"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) (*dto.WishlistResponse, error)
	// AddItem reports created=false when the item was already wished for.
	AddItem(ctx context.Context, userID string, req dto.AddToWishlistRequest) (item *model.WishlistItem, created bool, err error)
	RemoveItem(ctx context.Context, userID, itemID string) error
}

type wishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistServiceImpl{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *wishlistServiceImpl) GetWishlist(ctx context.Context, userID string) (*dto.WishlistResponse, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}

	return &dto.WishlistResponse{Items: items}, nil
}

func (s *wishlistServiceImpl) AddItem(ctx context.Context, userID string, req dto.AddToWishlistRequest) (*model.WishlistItem, bool, error) {
	existing, err := s.wishlistRepo.Find(ctx, userID, req.ProductID, req.VariantID)
	if err != nil {
		return nil, false, fmt.Errorf("find wishlist item: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, false, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, false, fmt.Errorf("product: %w", ErrNotFound)
	}

	if req.VariantID != "" {
		variant, err := s.productRepo.FindVariant(ctx, req.VariantID)
		if err != nil {
			return nil, false, fmt.Errorf("find variant: %w", err)
		}
		if variant == nil || variant.ProductID != req.ProductID {
			return nil, false, fmt.Errorf("variant: %w", ErrNotFound)
		}
	}

	item := &model.WishlistItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
	}
	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, false, fmt.Errorf("create wishlist item: %w", err)
	}
	return item, true, nil
}

func (s *wishlistServiceImpl) RemoveItem(ctx context.Context, userID, itemID string) error {
	deleted, err := s.wishlistRepo.DeleteByIDAndUser(ctx, itemID, userID)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if !deleted {
		return fmt.Errorf("wishlist item: %w", ErrNotFound)
	}
	return nil
}
