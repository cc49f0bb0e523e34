package service

import (
	"context"
	"fmt"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, userID string) *model.Order {
	t.Helper()

	order := &model.Order{
		ID:                uuid.NewString(),
		OrderNumber:       fmt.Sprintf("NH%d%s", time.Now().UnixMilli(), uuid.NewString()[:4]),
		UserID:            userID,
		Status:            model.OrderStatusPending,
		PaymentStatus:     model.PaymentStatusPending,
		ShippingAddressID: uuid.NewString(),
		BillingAddressID:  uuid.NewString(),
		SubtotalPaise:     30_000,
		TaxPaise:          5_400,
		ShippingPaise:     5_000,
		TotalPaise:        40_400,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestGetOrderOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	userID := gofakeit.UUID()
	order := seedOrder(t, db, userID)

	found, err := svc.GetOrder(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, order.OrderNumber, found.OrderNumber)

	// Someone else's order stays hidden.
	_, err = svc.GetOrder(ctx, gofakeit.UUID(), order.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetOrder(ctx, userID, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	userID := gofakeit.UUID()
	for i := 0; i < 5; i++ {
		seedOrder(t, db, userID)
	}
	seedOrder(t, db, gofakeit.UUID())

	result, err := svc.ListOrders(ctx, userID, "", 1, 2)
	require.NoError(t, err)
	assert.Len(t, result.Orders, 2)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.Pages)

	// Out-of-range inputs fall back to defaults.
	result, err = svc.ListOrders(ctx, userID, "all", 0, 0)
	require.NoError(t, err)
	assert.Len(t, result.Orders, 5)
	assert.Equal(t, 1, result.Pagination.Page)
}
