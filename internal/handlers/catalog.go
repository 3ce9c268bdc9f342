package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Balogunsamuel/grocery-shop-web/internal/catalog"
	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

type CatalogHandler struct {
	Store *store.Store
}

// ListProducts serves the storefront catalog. Filtering and sorting run
// in-memory over the active product list, the same predicates the
// storefront applies client-side; pagination happens after both.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, _, err := h.Store.ListProducts(store.ProductListQuery{})
	if err != nil {
		respondStoreError(w, err, "products")
		return
	}

	q := r.URL.Query()
	query := catalog.Query{
		Text: q.Get("search"),
	}
	if categoryID, err := strconv.Atoi(q.Get("category")); err == nil {
		query.CategoryID = categoryID
	}
	if min, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		query.PriceMin = min
	}
	if max, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		query.PriceMax = max
	}
	if brands := q.Get("brands"); brands != "" {
		query.Brands = strings.Split(brands, ",")
	}

	filtered := catalog.Filter(products, query)
	sorted := catalog.Sort(filtered, catalog.SortKey(q.Get("sort")))

	page, limit := pageParams(r)
	total := len(sorted)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	respondPage(w, sorted[start:end], page, limit, total)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.Store.GetProductByID(id)
	if err != nil {
		respondStoreError(w, err, "product")
		return
	}
	if !product.IsActive {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondData(w, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(false)
	if err != nil {
		respondStoreError(w, err, "categories")
		return
	}
	respondData(w, categories)
}
