package handler

import (
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.ShippingAddressID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Shipping address is required"})
	}
	if req.BillingAddressID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Billing address is required"})
	}

	result, err := h.checkoutService.Checkout(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
