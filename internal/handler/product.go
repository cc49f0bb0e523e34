package handler

import (
	"net/http"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	minPrice, _ := strconv.ParseInt(c.QueryParam("minPrice"), 10, 64)
	maxPrice, _ := strconv.ParseInt(c.QueryParam("maxPrice"), 10, 64)

	params := dto.ProductListParams{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		SortBy:   c.QueryParam("sort"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	result, err := h.catalogService.ListProducts(ctx, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProduct(ctx, c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}
