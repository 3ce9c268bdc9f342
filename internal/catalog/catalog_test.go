package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Fresh Organic Bananas", Description: "Rich in potassium", Price: 2.99, OriginalPrice: 3.49, CategoryID: 1, Brand: "Organic Farm", Rating: 4.5, Tags: []string{"organic", "fruit"}},
		{ID: 2, Name: "Whole Grain Bread", Description: "Freshly baked", Price: 4.99, OriginalPrice: 5.99, CategoryID: 5, Brand: "Artisan Bakery", Rating: 4.2},
		{ID: 3, Name: "Organic Spinach", Description: "Leafy greens", Price: 2.49, CategoryID: 2, Brand: "Organic Farm", Rating: 4.7, Tags: []string{"organic"}},
		{ID: 4, Name: "Fresh Salmon Fillet", Description: "Wild caught", Price: 12.99, CategoryID: 4, Brand: "Ocean Catch"},
	}
}

func TestFilterText(t *testing.T) {
	products := sampleProducts()

	t.Run("empty matches all", func(t *testing.T) {
		got := Filter(products, Query{})
		assert.Len(t, got, 4)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := Filter(products, Query{Text: "BANANA"})
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		got := Filter(products, Query{Text: "wild caught"})
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].ID)
	})

	t.Run("matches tags", func(t *testing.T) {
		got := Filter(products, Query{Text: "fruit"})
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})
}

func TestFilterCategoryPriceBrand(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, Query{CategoryID: 4})
	require.Len(t, got, 1)
	assert.Equal(t, "Fresh Salmon Fillet", got[0].Name)

	got = Filter(products, Query{PriceMin: 2.49, PriceMax: 4.99})
	assert.Len(t, got, 3) // bounds are inclusive

	got = Filter(products, Query{Brands: []string{"Organic Farm"}})
	assert.Len(t, got, 2)

	got = Filter(products, Query{Brands: []string{"Organic Farm"}, CategoryID: 1})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterIdempotent(t *testing.T) {
	products := sampleProducts()
	q := Query{Text: "organic", PriceMax: 5}

	once := Filter(products, q)
	twice := Filter(once, q)
	assert.Equal(t, once, twice)
}

func TestSort(t *testing.T) {
	products := sampleProducts()

	t.Run("price-low then price-high reverses", func(t *testing.T) {
		low := Sort(products, SortPriceLow)
		high := Sort(products, SortPriceHigh)
		require.Len(t, low, len(high))
		for i := range low {
			assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
		}
	})

	t.Run("rating treats missing as zero", func(t *testing.T) {
		got := Sort(products, SortRating)
		assert.Equal(t, 3, got[0].ID)
		assert.Equal(t, 4, got[len(got)-1].ID) // no rating sorts last
	})

	t.Run("name ascending", func(t *testing.T) {
		got := Sort(products, SortName)
		assert.Equal(t, "Fresh Organic Bananas", got[0].Name)
		assert.Equal(t, "Whole Grain Bread", got[len(got)-1].Name)
	})

	t.Run("newest is descending id", func(t *testing.T) {
		got := Sort(products, SortNewest)
		assert.Equal(t, 4, got[0].ID)
	})

	t.Run("discount descending, missing original is zero", func(t *testing.T) {
		got := Sort(products, SortDiscount)
		assert.Equal(t, 2, got[0].ID) // 17% off
		assert.Equal(t, 1, got[1].ID) // 14% off
	})

	t.Run("unknown key keeps input order", func(t *testing.T) {
		got := Sort(products, SortFeatured)
		assert.Equal(t, products, got)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := sampleProducts()
		Sort(before, SortPriceHigh)
		assert.Equal(t, sampleProducts(), before)
	})
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 14, DiscountPercent(3.49, 2.99))
	assert.Equal(t, 17, DiscountPercent(5.99, 4.99))
	assert.Equal(t, 0, DiscountPercent(0, 2.99))
	assert.Equal(t, 0, DiscountPercent(2.99, 2.99))
	assert.Equal(t, 0, DiscountPercent(1.99, 2.99)) // original below current
}
