package service

import (
	"context"
	"spicestore-backend/internal/dto"
	"spicestore-backend/internal/model"
	"spicestore-backend/internal/repository"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuoteService(db *gorm.DB) QuoteService {
	return NewQuoteService(
		repository.NewBusinessAccountRepository(db),
		repository.NewQuoteRepository(db),
		repository.NewProductRepository(db),
	)
}

func seedBusinessAccount(t *testing.T, db *gorm.DB, userID string) *model.BusinessAccount {
	t.Helper()

	account := &model.BusinessAccount{
		ID:          uuid.NewString(),
		UserID:      userID,
		CompanyName: gofakeit.Company(),
		Status:      model.BusinessStatusApproved,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestQuoteRequiresBusinessAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newQuoteService(db)
	ctx := context.Background()

	_, err := svc.ListQuotes(ctx, gofakeit.UUID())
	require.ErrorIs(t, err, ErrBusinessRequired)

	_, err = svc.CreateQuote(ctx, gofakeit.UUID(), dto.CreateQuoteRequest{})
	require.ErrorIs(t, err, ErrBusinessRequired)
}

func TestQuoteCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := newQuoteService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	seedBusinessAccount(t, db, userID)
	product, variant := seedVariant(t, db, 40_000, 100)

	quote, err := svc.CreateQuote(ctx, userID, dto.CreateQuoteRequest{
		Items: []dto.QuoteItemRequest{
			{ProductID: product.ID, VariantID: variant.ID, Quantity: 50},
		},
		Notes: "bulk order for festival season",
	})
	require.NoError(t, err)
	assert.Equal(t, model.QuoteStatusOpen, quote.Status)
	require.Len(t, quote.Items, 1)
	assert.Equal(t, 50, quote.Items[0].Quantity)
	assert.Zero(t, quote.Items[0].PricePaise, "pricing waits for sales review")

	list, err := svc.ListQuotes(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list.Quotes, 1)
	assert.Equal(t, quote.ID, list.Quotes[0].ID)
}

func TestQuoteCreateRejectsMismatchedVariant(t *testing.T) {
	db := newTestDB(t)
	svc := newQuoteService(db)
	ctx := context.Background()

	userID := gofakeit.UUID()
	seedBusinessAccount(t, db, userID)
	_, variant := seedVariant(t, db, 40_000, 100)
	other, _ := seedVariant(t, db, 30_000, 100)

	_, err := svc.CreateQuote(ctx, userID, dto.CreateQuoteRequest{
		Items: []dto.QuoteItemRequest{
			{ProductID: other.ID, VariantID: variant.ID, Quantity: 10},
		},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.CreateQuote(ctx, userID, dto.CreateQuoteRequest{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "At least one item is required", ve.Message)
}
