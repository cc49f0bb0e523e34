package dto

import "spicestore-backend/internal/model"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// -------- checkout --------

type CheckoutRequest struct {
	ShippingAddressID string `json:"shippingAddressId"`
	BillingAddressID  string `json:"billingAddressId"`
	PaymentMethod     string `json:"paymentMethod,omitempty"`
	CouponCode        string `json:"couponCode,omitempty"`
}

type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// -------- cart --------

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
	GiftNote  string `json:"giftNote,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int     `json:"quantity"`
	GiftNote *string `json:"giftNote,omitempty"`
}

type CartSummary struct {
	SubtotalPaise int64 `json:"subtotal"`
	TotalItems    int   `json:"totalItems"`
	TotalWeight   int   `json:"totalWeight"`
	ItemCount     int   `json:"itemCount"`
}

type CartResponse struct {
	Items   []model.CartItem `json:"items"`
	Summary CartSummary      `json:"summary"`
}

// -------- orders --------

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type OrderListResponse struct {
	Orders     []model.Order `json:"orders"`
	Pagination Pagination    `json:"pagination"`
}

type OrderResponse struct {
	Order model.Order `json:"order"`
}

// -------- products --------

type ProductListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
	SortBy   string
	MinPrice int64 // paise; 0 means unset
	MaxPrice int64 // paise; 0 means unset
}

type ProductListResponse struct {
	Products   []model.Product `json:"products"`
	Pagination Pagination      `json:"pagination"`
}

// -------- wishlist --------

type AddToWishlistRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
}

type WishlistResponse struct {
	Items []model.WishlistItem `json:"items"`
}

// -------- b2b quotes --------

type QuoteItemRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type CreateQuoteRequest struct {
	Items []QuoteItemRequest `json:"items"`
	Notes string             `json:"notes,omitempty"`
}

type QuoteResponse struct {
	Quote model.Quote `json:"quote"`
}

type QuoteListResponse struct {
	Quotes []model.Quote `json:"quotes"`
}
