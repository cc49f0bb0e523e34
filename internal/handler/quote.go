package handler

import (
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type QuoteHandler struct {
	quoteService service.QuoteService
}

func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	result, err := h.quoteService.ListQuotes(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}

	quote, err := h.quoteService.CreateQuote(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.QuoteResponse{Quote: *quote})
}
