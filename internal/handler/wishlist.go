package handler

import (
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	wishlist, err := h.wishlistService.GetWishlist(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, wishlist)
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.AddToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Product ID is required"})
	}

	item, created, err := h.wishlistService.AddItem(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}
	if !created {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item already in wishlist"})
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.wishlistService.RemoveItem(ctx, userID, c.Param("itemId")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item removed from wishlist"})
}
