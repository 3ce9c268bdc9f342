package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/Balogunsamuel/grocery-shop-web/internal/cart"
	"github.com/Balogunsamuel/grocery-shop-web/internal/pricing"
	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

// CartHandler mutates the caller's session cart. Each request restores the
// cart from the cookie, applies one operation and saves it back.
type CartHandler struct {
	Store    *store.Store
	Sessions *sessions.CookieStore
}

// cartView is the cart plus its derived totals and a live quote.
type cartView struct {
	Items            interface{}   `json:"items"`
	TotalItems       int           `json:"totalItems"`
	TotalPrice       float64       `json:"totalPrice"`
	Quote            pricing.Quote `json:"quote"`
	DeliveryEstimate string        `json:"deliveryEstimate"`
}

func (h *CartHandler) view(r *http.Request, c *cart.Cart) cartView {
	option := pricing.DeliveryOption(r.URL.Query().Get("option"))
	if option == "" {
		option = pricing.DeliveryStandard
	}
	return cartView{
		Items:            c.Items(),
		TotalItems:       c.TotalItems(),
		TotalPrice:       pricing.RoundCents(c.TotalPrice()),
		Quote:            pricing.ComputeQuote(c.Items(), option, r.URL.Query().Get("promo")),
		DeliveryEstimate: pricing.DeliveryEstimate(option),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := sessionCart(h.Sessions, w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	respondData(w, h.view(r, c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 {
		respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.Store.GetProductByID(req.ProductID)
	if err != nil {
		respondStoreError(w, err, "product")
		return
	}
	if !product.IsActive || !product.InStock {
		respondError(w, http.StatusBadRequest, "product is not available")
		return
	}

	c, err := sessionCart(h.Sessions, w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	c.AddItem(*product, req.Quantity)
	respondData(w, h.view(r, c))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := sessionCart(h.Sessions, w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	c.UpdateQuantity(id, req.Quantity)
	respondData(w, h.view(r, c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	c, err := sessionCart(h.Sessions, w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	c.RemoveItem(id)
	respondData(w, h.view(r, c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, err := sessionCart(h.Sessions, w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	c.Clear()
	respondData(w, h.view(r, c))
}
