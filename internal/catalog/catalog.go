// Package catalog provides pure filtering and sorting over product lists.
// Everything here operates on already-fetched slices; nothing touches the store.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

// Query describes a catalog filter. Zero values match everything:
// empty Text matches all products, CategoryID 0 means any category and
// an empty Brands set means any brand.
type Query struct {
	Text       string
	CategoryID int
	PriceMin   float64
	PriceMax   float64
	Brands     []string
}

// SortKey selects one of the fixed sort orders.
type SortKey string

const (
	SortFeatured  SortKey = "featured" // input order
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
	SortDiscount  SortKey = "discount"
)

// Filter returns the subsequence of products matching q. The input slice is
// never mutated.
func Filter(products []models.Product, q Query) []models.Product {
	text := strings.ToLower(q.Text)
	brands := make(map[string]bool, len(q.Brands))
	for _, b := range q.Brands {
		brands[b] = true
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesText(p, text) {
			continue
		}
		if q.CategoryID != 0 && p.CategoryID != q.CategoryID {
			continue
		}
		if p.Price < q.PriceMin || (q.PriceMax > 0 && p.Price > q.PriceMax) {
			continue
		}
		if len(brands) > 0 && !brands[p.Brand] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesText(p models.Product, text string) bool {
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.Description), text) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), text) {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by key. Ties keep their input order
// (stable sort). An unknown key returns the products in input order.
func Sort(products []models.Product, key SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })
	case SortDiscount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return DiscountPercent(sorted[i].OriginalPrice, sorted[i].Price) >
				DiscountPercent(sorted[j].OriginalPrice, sorted[j].Price)
		})
	}
	return sorted
}

// DiscountPercent computes the rounded percentage discount between an
// original and a current price. A missing (zero) or not-greater original
// price yields 0 rather than a divide-by-zero or negative percentage.
func DiscountPercent(originalPrice, price float64) int {
	if originalPrice <= 0 || originalPrice <= price {
		return 0
	}
	return int(math.Round((originalPrice - price) / originalPrice * 100))
}
