package service

import (
	"context"
	"fmt"
	"sort"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"
)

type CatalogService interface {
	ListProducts(ctx context.Context, params dto.ProductListParams) (*dto.ProductListResponse, error)
	GetProduct(ctx context.Context, slug string) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, params dto.ProductListParams) (*dto.ProductListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 12
	}
	switch params.SortBy {
	case "name", "price", "created_at":
	default:
		params.SortBy = "name"
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	// Price filters live on the variants, so a product can come back with
	// none of its variants matching. Those drop out of the page.
	filtered := products[:0]
	for _, p := range products {
		if len(p.Variants) > 0 {
			filtered = append(filtered, p)
		}
	}

	if params.SortBy == "price" {
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Variants[0].PricePaise < filtered[j].Variants[0].PricePaise
		})
	}

	pages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return &dto.ProductListResponse{
		Products: filtered,
		Pagination: dto.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product: %w", ErrNotFound)
	}

	return product, nil
}
