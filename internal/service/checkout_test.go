package service

import (
	"context"
	"fmt"
	"spicestore-backend/internal/client"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database survives across the pool's
	// connections for the duration of the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	return db
}

func newCheckoutService(db *gorm.DB) CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewCartRepository(db),
		repository.NewAddressRepository(db),
		repository.NewDiscountRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
	)
}

func seedVariant(t *testing.T, db *gorm.DB, pricePaise int64, stockQty int) (*model.Product, *model.ProductVariant) {
	t.Helper()

	product := &model.Product{
		ID:       uuid.NewString(),
		Slug:     gofakeit.Word() + "-" + uuid.NewString(),
		Name:     gofakeit.ProductName(),
		Category: "whole-spices",
		IsActive: true,
	}
	require.NoError(t, db.Create(product).Error)

	variant := &model.ProductVariant{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		SKU:         "SKU-" + uuid.NewString(),
		Name:        "250g jar",
		PricePaise:  pricePaise,
		MRPPaise:    pricePaise + 1_000,
		WeightGrams: 250,
		StockQty:    stockQty,
		IsActive:    true,
	}
	require.NoError(t, db.Create(variant).Error)

	return product, variant
}

func seedAddress(t *testing.T, db *gorm.DB, userID string) *model.Address {
	t.Helper()

	address := &model.Address{
		ID:       uuid.NewString(),
		UserID:   userID,
		FullName: gofakeit.Name(),
		Line1:    gofakeit.Street(),
		City:     gofakeit.City(),
		State:    gofakeit.State(),
		Pincode:  gofakeit.Zip(),
	}
	require.NoError(t, db.Create(address).Error)
	return address
}

func seedCartItem(t *testing.T, db *gorm.DB, userID string, product *model.Product, variant *model.ProductVariant, qty int) {
	t.Helper()

	require.NoError(t, db.Create(&model.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: product.ID,
		VariantID: variant.ID,
		Quantity:  qty,
	}).Error)
}

func TestCheckoutSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	product, variant := seedVariant(t, db, 50_000, 10)
	seedCartItem(t, db, userID, product, variant, 2)
	address := seedAddress(t, db, userID)

	resp, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.OrderID)
	assert.Regexp(t, `^NH\d+`, resp.OrderNumber)

	var order model.Order
	require.NoError(t, db.Preload("Items").Where("id = ?", resp.OrderID).First(&order).Error)

	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, int64(100_000), order.SubtotalPaise)
	assert.Equal(t, int64(18_000), order.TaxPaise)
	assert.Equal(t, int64(5_000), order.ShippingPaise) // 1000 rupees is not free shipping
	assert.Equal(t, int64(123_000), order.TotalPaise)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, variant.SKU, item.SKU)
	assert.Equal(t, product.Name, item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, int64(50_000), item.UnitPricePaise)
	assert.Equal(t, int64(100_000), item.LineTotalPaise)
	assert.Equal(t, item.UnitPricePaise*int64(item.Quantity), item.LineTotalPaise)

	// Line totals add up to the order subtotal.
	var sum int64
	for _, it := range order.Items {
		sum += it.LineTotalPaise
	}
	assert.Equal(t, order.SubtotalPaise, sum)

	// Cart is gone, stock is down.
	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	var updated model.ProductVariant
	require.NoError(t, db.Where("id = ?", variant.ID).First(&updated).Error)
	assert.Equal(t, 8, updated.StockQty)
}

func TestCheckoutOrderItemsAreFrozenSnapshots(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	product, variant := seedVariant(t, db, 30_000, 5)
	seedCartItem(t, db, userID, product, variant, 1)
	address := seedAddress(t, db, userID)

	resp, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
	})
	require.NoError(t, err)

	// Reprice the variant after the fact; the order must not move.
	require.NoError(t, db.Model(&model.ProductVariant{}).
		Where("id = ?", variant.ID).
		Update("price_paise", 99_999).Error)

	var item model.OrderItem
	require.NoError(t, db.Where("order_id = ?", resp.OrderID).First(&item).Error)
	assert.Equal(t, int64(30_000), item.UnitPricePaise)
	assert.Equal(t, int64(30_000), item.LineTotalPaise)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	address := seedAddress(t, db, userID)

	_, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
	})
	require.ErrorIs(t, err, ErrEmptyCart)

	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCheckoutForeignAddress(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	product, variant := seedVariant(t, db, 20_000, 5)
	seedCartItem(t, db, userID, product, variant, 1)

	own := seedAddress(t, db, userID)
	foreign := seedAddress(t, db, gofakeit.UUID())

	_, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
		ShippingAddressID: own.ID,
		BillingAddressID:  foreign.ID,
	})
	require.ErrorIs(t, err, ErrInvalidAddress)

	// Nothing was written, the cart is untouched.
	var orderCount, cartCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Zero(t, orderCount)
	assert.Equal(t, int64(1), cartCount)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	product, variant := seedVariant(t, db, 20_000, 1)
	seedCartItem(t, db, userID, product, variant, 3)
	address := seedAddress(t, db, userID)

	_, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	var orderCount, itemCount, cartCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&itemCount).Error)
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Zero(t, orderCount, "no partial order may be observable")
	assert.Zero(t, itemCount)
	assert.Equal(t, int64(1), cartCount)

	var updated model.ProductVariant
	require.NoError(t, db.Where("id = ?", variant.ID).First(&updated).Error)
	assert.Equal(t, 1, updated.StockQty)
}

func TestCheckoutCouponApplied(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	product, variant := seedVariant(t, db, 30_000, 5)
	seedCartItem(t, db, userID, product, variant, 1)
	address := seedAddress(t, db, userID)

	require.NoError(t, db.Create(&model.DiscountCode{
		ID:         uuid.NewString(),
		Code:       "SAVE10",
		Kind:       model.DiscountPercentage,
		Value:      10,
		IsActive:   true,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
	}).Error)

	resp, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
		CouponCode:        "SAVE10",
	})
	require.NoError(t, err)

	var order model.Order
	require.NoError(t, db.Where("id = ?", resp.OrderID).First(&order).Error)
	assert.Equal(t, int64(3_000), order.DiscountPaise)
	assert.Equal(t, int64(37_400), order.TotalPaise)
	assert.Equal(t, "SAVE10", order.CouponCode)
}

func TestCheckoutBadCouponDegradesSilently(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.DiscountCode{
		ID:         uuid.NewString(),
		Code:       "EXPIRED",
		Kind:       model.DiscountPercentage,
		Value:      50,
		IsActive:   true,
		ValidFrom:  time.Now().Add(-48 * time.Hour),
		ValidUntil: time.Now().Add(-24 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.DiscountCode{
		ID:         uuid.NewString(),
		Code:       "DISABLED",
		Kind:       model.DiscountFixed,
		Value:      5_000,
		IsActive:   false,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
	}).Error)

	for _, code := range []string{"EXPIRED", "DISABLED", "NO-SUCH-CODE"} {
		t.Run(code, func(t *testing.T) {
			userID := gofakeit.UUID()
			product, variant := seedVariant(t, db, 200_000, 5)
			seedCartItem(t, db, userID, product, variant, 1)
			address := seedAddress(t, db, userID)

			resp, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
				ShippingAddressID: address.ID,
				BillingAddressID:  address.ID,
				CouponCode:        code,
			})
			require.NoError(t, err, "a bad coupon must never block checkout")

			var order model.Order
			require.NoError(t, db.Where("id = ?", resp.OrderID).First(&order).Error)
			assert.Zero(t, order.DiscountPaise)
			assert.Equal(t, int64(236_000), order.TotalPaise)
		})
	}
}

func TestCheckoutRepeatedOrderNumbersDistinct(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		userID := gofakeit.UUID()
		product, variant := seedVariant(t, db, 10_000, 5)
		seedCartItem(t, db, userID, product, variant, 1)
		address := seedAddress(t, db, userID)

		resp, err := svc.Checkout(ctx, userID, dto.CheckoutRequest{
			ShippingAddressID: address.ID,
			BillingAddressID:  address.ID,
		})
		require.NoError(t, err)
		require.False(t, seen[resp.OrderNumber], "duplicate order number %s", resp.OrderNumber)
		seen[resp.OrderNumber] = true
	}
}

func TestNewOrderNumberConcurrent(t *testing.T) {
	const n = 200

	var mu sync.Mutex
	seen := make(map[string]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num := newOrderNumber()
			mu.Lock()
			seen[num] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "order numbers must stay unique under concurrency")
}
