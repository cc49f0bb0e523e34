package handler

import (
	"errors"
	"log"
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// userIDFrom reads the authenticated user set by the auth middleware.
func userIDFrom(c echo.Context) (string, bool) {
	id, ok := c.Get("user_id").(string)
	return id, ok && id != ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
}

// respondError maps service errors onto the wire contract. Anything outside
// the known taxonomy is logged in full and reported generically.
func respondError(c echo.Context, err error) error {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message})
	case errors.Is(err, service.ErrEmptyCart):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Cart is empty"})
	case errors.Is(err, service.ErrInvalidAddress):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid address"})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Insufficient stock"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, service.ErrBusinessRequired):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Business account required"})
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
