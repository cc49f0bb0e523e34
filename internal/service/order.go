package service

import (
	"context"
	"fmt"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"
)

type OrderService interface {
	ListOrders(ctx context.Context, userID, status string, page, limit int) (*dto.OrderListResponse, error)
	GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, userID, status string, page, limit int) (*dto.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.orderRepo.ListByUser(ctx, userID, status, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.OrderListResponse{
		Orders: orders,
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order: %w", ErrNotFound)
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}

	return order, nil
}
