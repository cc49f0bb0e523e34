package handler

import (
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	status := c.QueryParam("status")

	result, err := h.orderService.ListOrders(ctx, userID, status, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	order, err := h.orderService.GetOrder(ctx, userID, c.Param("orderId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.OrderResponse{Order: *order})
}
