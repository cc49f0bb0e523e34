package handler

import (
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	cart, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Product ID is required"})
	}
	if req.VariantID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Variant ID is required"})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Quantity must be at least 1"})
	}

	item, err := h.cartService.AddItem(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	itemID := c.Param("itemId")

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Quantity must be non-negative"})
	}

	item, err := h.cartService.UpdateItem(ctx, userID, itemID, req)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item removed from cart"})
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cartService.RemoveItem(ctx, userID, c.Param("itemId")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item removed from cart"})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cartService.ClearCart(ctx, userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cart cleared successfully"})
}
