package service

import (
	"context"
	"fmt"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"

	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, userID string, req dto.AddToCartRequest) (*model.CartItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, req dto.UpdateCartItemRequest) (*model.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	summary := dto.CartSummary{ItemCount: len(items)}
	for _, item := range items {
		summary.SubtotalPaise += item.Variant.PricePaise * int64(item.Quantity)
		summary.TotalItems += item.Quantity
		summary.TotalWeight += item.Variant.WeightGrams * item.Quantity
	}

	return &dto.CartResponse{Items: items, Summary: summary}, nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID string, req dto.AddToCartRequest) (*model.CartItem, error) {
	variant, err := s.productRepo.FindVariant(ctx, req.VariantID)
	if err != nil {
		return nil, fmt.Errorf("find variant: %w", err)
	}
	if variant == nil || !variant.IsActive {
		return nil, fmt.Errorf("product or variant: %w", ErrNotFound)
	}
	if variant.ProductID != req.ProductID {
		return nil, NewValidationError("Variant does not belong to the specified product")
	}
	if variant.StockQty < req.Quantity {
		return nil, NewValidationError(fmt.Sprintf("Only %d items available in stock", variant.StockQty))
	}

	existing, err := s.cartRepo.FindByUserAndVariant(ctx, userID, req.VariantID)
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	if existing != nil {
		newQuantity := existing.Quantity + req.Quantity
		if newQuantity > variant.StockQty {
			return nil, NewValidationError(fmt.Sprintf(
				"Cannot add %d more items. Only %d more available.",
				req.Quantity, variant.StockQty-existing.Quantity))
		}

		existing.Quantity = newQuantity
		if req.GiftNote != "" {
			existing.GiftNote = req.GiftNote
		}
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
		return existing, nil
	}

	item := &model.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		GiftNote:  req.GiftNote,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return item, nil
}

func (s *cartServiceImpl) UpdateItem(ctx context.Context, userID, itemID string, req dto.UpdateCartItemRequest) (*model.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("cart item: %w", ErrNotFound)
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}

	// Quantity zero removes the line.
	if req.Quantity == 0 {
		if err := s.cartRepo.Delete(ctx, itemID); err != nil {
			return nil, fmt.Errorf("delete cart item: %w", err)
		}
		return nil, nil
	}

	if req.Quantity > item.Variant.StockQty {
		return nil, NewValidationError(fmt.Sprintf("Only %d items available in stock", item.Variant.StockQty))
	}

	item.Quantity = req.Quantity
	if req.GiftNote != nil {
		item.GiftNote = *req.GiftNote
	}
	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return item, nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, itemID string) error {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("find cart item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("cart item: %w", ErrNotFound)
	}
	if item.UserID != userID {
		return ErrForbidden
	}

	return s.cartRepo.Delete(ctx, itemID)
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepo.DeleteAllByUser(ctx, userID)
}
