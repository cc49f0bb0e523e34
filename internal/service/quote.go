package service

import (
	"context"
	"fmt"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"

	"github.com/google/uuid"
)

type QuoteService interface {
	ListQuotes(ctx context.Context, userID string) (*dto.QuoteListResponse, error)
	CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*model.Quote, error)
}

type quoteServiceImpl struct {
	businessRepo repository.BusinessAccountRepository
	quoteRepo    repository.QuoteRepository
	productRepo  repository.ProductRepository
}

func NewQuoteService(
	businessRepo repository.BusinessAccountRepository,
	quoteRepo repository.QuoteRepository,
	productRepo repository.ProductRepository,
) QuoteService {
	return &quoteServiceImpl{
		businessRepo: businessRepo,
		quoteRepo:    quoteRepo,
		productRepo:  productRepo,
	}
}

func (s *quoteServiceImpl) businessAccount(ctx context.Context, userID string) (*model.BusinessAccount, error) {
	account, err := s.businessRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find business account: %w", err)
	}
	if account == nil {
		return nil, ErrBusinessRequired
	}
	return account, nil
}

func (s *quoteServiceImpl) ListQuotes(ctx context.Context, userID string) (*dto.QuoteListResponse, error) {
	account, err := s.businessAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	quotes, err := s.quoteRepo.ListByBusinessAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	return &dto.QuoteListResponse{Quotes: quotes}, nil
}

func (s *quoteServiceImpl) CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*model.Quote, error) {
	account, err := s.businessAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, NewValidationError("At least one item is required")
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, NewValidationError("Quantity must be at least 1")
		}
		variant, err := s.productRepo.FindVariant(ctx, item.VariantID)
		if err != nil {
			return nil, fmt.Errorf("find variant: %w", err)
		}
		if variant == nil || variant.ProductID != item.ProductID {
			return nil, NewValidationError(fmt.Sprintf("Invalid product or variant: %s", item.ProductID))
		}
	}

	quote := &model.Quote{
		ID:                uuid.NewString(),
		BusinessAccountID: account.ID,
		Status:            model.QuoteStatusOpen,
		Notes:             req.Notes,
		Items:             make([]model.QuoteItem, len(req.Items)),
	}
	for i, item := range req.Items {
		// Prices stay zero until the sales team reviews the quote.
		quote.Items[i] = model.QuoteItem{
			QuoteID:   quote.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		}
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return quote, nil
}
