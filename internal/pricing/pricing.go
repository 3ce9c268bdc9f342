// Package pricing derives checkout totals from cart contents. All
// computations are pure and re-run on every call so displayed totals can
// never drift from the live cart.
package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// TaxRate is the flat sales-tax rate applied to the subtotal. Not
// geography-aware.
const TaxRate = 0.08

// FreeDeliveryThreshold is the subtotal at which delivery becomes free for
// every delivery option.
const FreeDeliveryThreshold = 50.0

// DeliveryOption selects a fee tier and an estimate.
type DeliveryOption string

const (
	DeliveryStandard  DeliveryOption = "standard"
	DeliveryScheduled DeliveryOption = "scheduled"
	DeliveryExpress   DeliveryOption = "express"
)

// Quote is one fully derived checkout computation.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// promoCodes maps recognized codes to their percentage off the subtotal.
var promoCodes = map[string]float64{
	"save10": 0.10,
}

// DeliveryFee returns the fee for a subtotal and option. Orders at or above
// FreeDeliveryThreshold ship free regardless of option; an unknown option is
// charged the standard tier.
func DeliveryFee(subtotal float64, option DeliveryOption) float64 {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	switch option {
	case DeliveryExpress:
		return 9.99
	case DeliveryScheduled:
		return 2.99
	default:
		return 4.99
	}
}

// DeliveryEstimate returns the human-readable delivery window for an option.
func DeliveryEstimate(option DeliveryOption) string {
	switch option {
	case DeliveryExpress:
		return "30 minutes"
	case DeliveryScheduled:
		return "Selected time slot"
	default:
		return "2-3 business days"
	}
}

// PromoDiscount returns the discount amount a promo code grants on a
// subtotal. Unrecognized codes grant nothing.
func PromoDiscount(subtotal float64, code string) float64 {
	pct, ok := promoCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return 0
	}
	return RoundCents(subtotal * pct)
}

// ComputeQuote derives subtotal, discount, delivery fee, tax and total for
// the given line items.
func ComputeQuote(items []models.CartItem, option DeliveryOption, promoCode string) Quote {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = RoundCents(subtotal)

	q := Quote{
		Subtotal:    subtotal,
		Discount:    PromoDiscount(subtotal, promoCode),
		DeliveryFee: DeliveryFee(subtotal, option),
		Tax:         RoundCents(subtotal * TaxRate),
	}
	q.Total = RoundCents(q.Subtotal - q.Discount + q.DeliveryFee + q.Tax)
	return q
}

// RoundCents rounds to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPrice renders a USD amount with a thousands separator, e.g.
// "$1,234.56".
func FormatPrice(v float64) string {
	neg := v < 0
	v = math.Abs(RoundCents(v))

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))

	s := fmt.Sprintf("%d", whole)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	out := fmt.Sprintf("$%s.%02d", s, cents)
	if neg {
		return "-" + out
	}
	return out
}

// FormatDate renders a timestamp like "Jan 2, 2006". Zero times render as
// "N/A".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}
