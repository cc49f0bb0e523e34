package model

import "time"

// All monetary columns hold paise (INR minor units). Converting to rupees
// happens at the presentation edge, never in stored data.

type Product struct {
	ID          string `gorm:"primaryKey;size:36"`
	Slug        string `gorm:"size:160;uniqueIndex;not null"`
	Name        string `gorm:"size:160;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:64;index"`
	Origin      string `gorm:"size:64"`
	IsActive    bool   `gorm:"not null;default:true"`
	IsFeatured  bool   `gorm:"not null;default:false"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductVariant struct {
	ID          string `gorm:"primaryKey;size:36"`
	ProductID   string `gorm:"size:36;index;not null"`
	SKU         string `gorm:"column:sku;size:64;uniqueIndex;not null"`
	Name        string `gorm:"size:160;not null"` // e.g. "250g jar"
	PricePaise  int64  `gorm:"not null"`
	MRPPaise    int64  `gorm:"column:mrp_paise;not null"`
	WeightGrams int    `gorm:"not null"`
	StockQty    int    `gorm:"not null"`
	Packaging   string `gorm:"size:64"`
	IsActive    bool   `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;index;uniqueIndex:uniq_cart_user_variant;not null"`
	ProductID string `gorm:"size:36;not null"`
	VariantID string `gorm:"size:36;uniqueIndex:uniq_cart_user_variant;not null"`
	Quantity  int    `gorm:"not null"`
	GiftNote  string `gorm:"size:500"`

	Product Product        `gorm:"foreignKey:ProductID"`
	Variant ProductVariant `gorm:"foreignKey:VariantID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Address struct {
	ID       string `gorm:"primaryKey;size:36"`
	UserID   string `gorm:"size:36;index;not null"`
	FullName string `gorm:"size:120;not null"`
	Line1    string `gorm:"size:200;not null"`
	Line2    string `gorm:"size:200"`
	City     string `gorm:"size:80;not null"`
	State    string `gorm:"size:80;not null"`
	Pincode  string `gorm:"size:12;not null"`
	Phone    string `gorm:"size:20"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed_amount"
)

type DiscountCode struct {
	ID   string `gorm:"primaryKey;size:36"`
	Code string `gorm:"size:64;uniqueIndex;not null"`
	Kind string `gorm:"size:32;not null"` // percentage, fixed_amount

	// Percentage points for percentage codes, paise for fixed_amount codes.
	Value int64 `gorm:"not null"`

	// Cap on a percentage discount. Nil means uncapped.
	MaxDiscountPaise *int64

	IsActive   bool      `gorm:"not null;default:true"`
	ValidFrom  time.Time `gorm:"not null"`
	ValidUntil time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

type Order struct {
	ID            string `gorm:"primaryKey;size:36"`
	OrderNumber   string `gorm:"size:40;uniqueIndex;not null"`
	UserID        string `gorm:"size:36;index;not null"`
	Status        string `gorm:"size:32;index;not null"`
	PaymentStatus string `gorm:"size:32;not null"`

	ShippingAddressID string `gorm:"size:36;not null"`
	BillingAddressID  string `gorm:"size:36;not null"`

	SubtotalPaise int64 `gorm:"not null"`
	TaxPaise      int64 `gorm:"not null"`
	ShippingPaise int64 `gorm:"not null"`
	DiscountPaise int64 `gorm:"not null"`
	TotalPaise    int64 `gorm:"not null"`

	CouponCode string `gorm:"size:64"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a frozen snapshot of a cart line at checkout time. It never
// changes, even if the product or variant is later edited or deleted.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID string `gorm:"size:36;index;not null"`

	ProductID string `gorm:"size:36;not null"`
	VariantID string `gorm:"size:36;not null"`

	SKU            string `gorm:"column:sku;size:64;not null"`
	Name           string `gorm:"size:160;not null"`
	WeightGrams    int    `gorm:"not null"`
	Quantity       int    `gorm:"not null"`
	UnitPricePaise int64  `gorm:"not null"`
	LineTotalPaise int64  `gorm:"not null"`
	GiftNote       string `gorm:"size:500"`

	CreatedAt time.Time
}

type WishlistItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;index;uniqueIndex:uniq_wishlist_entry;not null"`
	ProductID string `gorm:"size:36;uniqueIndex:uniq_wishlist_entry;not null"`
	// Empty when the wish is for the product as a whole.
	VariantID string `gorm:"size:36;uniqueIndex:uniq_wishlist_entry"`

	Product Product         `gorm:"foreignKey:ProductID"`
	Variant *ProductVariant `gorm:"foreignKey:VariantID"`

	CreatedAt time.Time
}

const (
	BusinessStatusPending  = "pending"
	BusinessStatusApproved = "approved"
	BusinessStatusRejected = "rejected"
)

type BusinessAccount struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;uniqueIndex;not null"`
	CompanyName string `gorm:"size:160;not null"`
	GSTIN       string `gorm:"column:gstin;size:20"`
	Status      string `gorm:"size:32;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	QuoteStatusOpen   = "open"
	QuoteStatusQuoted = "quoted"
	QuoteStatusClosed = "closed"
)

type Quote struct {
	ID                string `gorm:"primaryKey;size:36"`
	BusinessAccountID string `gorm:"size:36;index;not null"`
	Status            string `gorm:"size:32;not null"`
	Notes             string `gorm:"size:1000"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type QuoteItem struct {
	ID      uint   `gorm:"primaryKey"`
	QuoteID string `gorm:"size:36;index;not null"`

	ProductID string `gorm:"size:36;not null"`
	VariantID string `gorm:"size:36;not null"`
	Quantity  int    `gorm:"not null"`

	// Filled in by the sales team when the quote is priced.
	PricePaise int64 `gorm:"not null"`
	TotalPaise int64 `gorm:"not null"`

	CreatedAt time.Time
}
