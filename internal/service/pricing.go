package service

import (
	"spicestore-backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

// GST charged on every order. Policy data for this storefront, not tunable.
var taxRate = decimal.RequireFromString("0.18")

const (
	// Subtotals strictly above the threshold ship free, everything else
	// pays the flat fee. 1000 rupees exactly still pays shipping.
	freeShippingThresholdPaise = int64(100_000)
	flatShippingPaise          = int64(5_000)
)

type PriceLine struct {
	UnitPricePaise int64
	Quantity       int
}

// DiscountResult says whether a coupon took effect and, when it did not,
// why. A rejected coupon is reported here, never as an error: checkout
// must not block on a bad code.
type DiscountResult struct {
	Applied     bool
	AmountPaise int64
	Reason      string
}

type Totals struct {
	SubtotalPaise int64
	TaxPaise      int64
	ShippingPaise int64
	DiscountPaise int64
	TotalPaise    int64

	Discount DiscountResult
}

// ComputeTotals prices a cart. All arithmetic is integer paise; the tax and
// percentage-discount intermediates use decimals rounded half-up to the
// nearest paisa.
func ComputeTotals(lines []PriceLine, coupon *model.DiscountCode, now time.Time) Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.UnitPricePaise * int64(line.Quantity)
	}

	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()

	shipping := flatShippingPaise
	if subtotal > freeShippingThresholdPaise {
		shipping = 0
	}

	discount := evaluateDiscount(subtotal, coupon, now)

	return Totals{
		SubtotalPaise: subtotal,
		TaxPaise:      tax,
		ShippingPaise: shipping,
		DiscountPaise: discount.AmountPaise,
		TotalPaise:    subtotal + tax + shipping - discount.AmountPaise,
		Discount:      discount,
	}
}

func evaluateDiscount(subtotal int64, coupon *model.DiscountCode, now time.Time) DiscountResult {
	if coupon == nil {
		return DiscountResult{Reason: "no active coupon"}
	}
	// The discount store already filters inactive codes, but the pricing
	// step must hold on its own for any caller.
	if !coupon.IsActive {
		return DiscountResult{Reason: "coupon is not active"}
	}
	if now.Before(coupon.ValidFrom) || now.After(coupon.ValidUntil) {
		return DiscountResult{Reason: "coupon outside validity window"}
	}

	var amount int64
	switch coupon.Kind {
	case model.DiscountPercentage:
		amount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(coupon.Value)).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
		// A nil cap means uncapped. An explicit cap of zero is honored.
		if coupon.MaxDiscountPaise != nil && amount > *coupon.MaxDiscountPaise {
			amount = *coupon.MaxDiscountPaise
		}
	case model.DiscountFixed:
		amount = coupon.Value
	default:
		return DiscountResult{Reason: "unknown coupon kind " + coupon.Kind}
	}

	if amount < 0 {
		amount = 0
	}
	// The discount can never exceed what is being bought.
	if amount > subtotal {
		amount = subtotal
	}

	return DiscountResult{Applied: true, AmountPaise: amount}
}
