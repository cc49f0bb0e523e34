package service

import (
	"context"
	"fmt"
	"log"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db           *gorm.DB
	cartRepo     repository.CartRepository
	addressRepo  repository.AddressRepository
	discountRepo repository.DiscountRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	discountRepo repository.DiscountRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:           db,
		cartRepo:     cartRepo,
		addressRepo:  addressRepo,
		discountRepo: discountRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
	}
}

// Checkout runs the full pipeline: load the cart, verify the addresses,
// price the lines, then create the order, its item snapshots and the stock
// decrements in one transaction. Clearing the cart happens after commit and
// is best-effort.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shipping, billing, err := s.verifyAddresses(ctx, userID, req.ShippingAddressID, req.BillingAddressID)
	if err != nil {
		return nil, err
	}

	var coupon *model.DiscountCode
	if req.CouponCode != "" {
		coupon, err = s.discountRepo.FindActiveByCode(ctx, req.CouponCode)
		if err != nil {
			// A broken discount store must not block checkout.
			log.Printf("coupon %q lookup failed, proceeding without discount: %v", req.CouponCode, err)
			coupon = nil
		}
	}

	lines := make([]PriceLine, len(items))
	for i, item := range items {
		lines[i] = PriceLine{
			UnitPricePaise: item.Variant.PricePaise,
			Quantity:       item.Quantity,
		}
	}

	totals := ComputeTotals(lines, coupon, time.Now())
	if req.CouponCode != "" && !totals.Discount.Applied {
		log.Printf("coupon %q not applied: %s", req.CouponCode, totals.Discount.Reason)
	}

	order := &model.Order{
		ID:                uuid.NewString(),
		OrderNumber:       newOrderNumber(),
		UserID:            userID,
		Status:            model.OrderStatusPending,
		PaymentStatus:     model.PaymentStatusPending,
		ShippingAddressID: shipping.ID,
		BillingAddressID:  billing.ID,
		SubtotalPaise:     totals.SubtotalPaise,
		TaxPaise:          totals.TaxPaise,
		ShippingPaise:     totals.ShippingPaise,
		DiscountPaise:     totals.DiscountPaise,
		TotalPaise:        totals.TotalPaise,
		CouponCode:        req.CouponCode,
	}

	orderItems := make([]*model.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = &model.OrderItem{
			OrderID:        order.ID,
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			SKU:            item.Variant.SKU,
			Name:           item.Product.Name,
			WeightGrams:    item.Variant.WeightGrams,
			Quantity:       item.Quantity,
			UnitPricePaise: item.Variant.PricePaise,
			LineTotalPaise: item.Variant.PricePaise * int64(item.Quantity),
			GiftNote:       item.GiftNote,
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		if err := s.orderRepo.CreateItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}
		for _, item := range items {
			ok, err := s.productRepo.DecrementStock(ctx, tx, item.VariantID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock for variant %s: %w", item.VariantID, err)
			}
			if !ok {
				return ErrInsufficientStock
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The order is committed; a failed cart cleanup is logged and retried
	// by the user's next cart interaction, never rolled back.
	if err := s.cartRepo.DeleteAllByUser(ctx, userID); err != nil {
		log.Printf("clear cart for user %s after order %s: %v", userID, order.OrderNumber, err)
	}

	return &dto.CheckoutResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	}, nil
}

// verifyAddresses fetches both addresses concurrently; they are independent
// reads with no ordering between them.
func (s *checkoutServiceImpl) verifyAddresses(ctx context.Context, userID, shippingID, billingID string) (*model.Address, *model.Address, error) {
	var shipping, billing *model.Address

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shipping, err = s.addressRepo.FindByIDAndUser(gctx, shippingID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		billing, err = s.addressRepo.FindByIDAndUser(gctx, billingID, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("verify addresses: %w", err)
	}

	if shipping == nil || billing == nil {
		return nil, nil, ErrInvalidAddress
	}
	return shipping, billing, nil
}

// newOrderNumber combines a millisecond timestamp with a random suffix so
// numbers stay unique even across simultaneous checkouts.
func newOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("NH%d%s", time.Now().UnixMilli(), suffix)
}
