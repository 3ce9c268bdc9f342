package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/checkout"
	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
	"github.com/Balogunsamuel/grocery-shop-web/internal/pricing"
	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

type OrderHandler struct {
	Store       *store.Store
	Sessions    *sessions.CookieStore
	Gateway     checkout.Gateway
	FlowTimeout time.Duration

	// One placement flow per shopper session; the flow's in-flight guard
	// rejects double submissions from the same session.
	flows sync.Map
}

type placeOrderRequest struct {
	DeliveryAddress models.Address `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	DeliveryOption  string         `json:"deliveryOption"`
	PromoCode       string         `json:"promoCode"`
	Email           string         `json:"email"`
	Name            string         `json:"name"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if field := firstMissingField(req); field != "" {
		respondError(w, http.StatusBadRequest, field+" is required")
		return
	}
	if req.DeliveryOption == "" {
		req.DeliveryOption = string(pricing.DeliveryStandard)
	}

	c, err := sessionCart(h.Sessions, w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	// sessionCart guarantees the id exists; the cookie store hands back
	// the same session for this request.
	session, _ := h.Sessions.Get(r, cartSessionName)
	sid, _ := session.Values[sessionIDKey].(string)
	if sid == "" {
		sid = uuid.New().String()
	}

	flowValue, _ := h.flows.LoadOrStore(sid, checkout.NewFlow(h.Gateway, h.Store, h.FlowTimeout))
	flow := flowValue.(*checkout.Flow)

	order, err := flow.Place(r.Context(), checkout.PlaceRequest{
		Cart:            c,
		UserID:          req.Email,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		DeliveryOption:  pricing.DeliveryOption(req.DeliveryOption),
		PromoCode:       req.PromoCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInProgress):
			respondError(w, http.StatusConflict, "an order is already being placed")
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusBadRequest, "cart is empty")
		default:
			respondError(w, http.StatusPaymentRequired, "payment failed, please try again")
		}
		return
	}

	h.recordCustomer(req)
	respondCreated(w, order)
}

func firstMissingField(req placeOrderRequest) string {
	switch {
	case req.DeliveryAddress.Street == "":
		return "deliveryAddress.street"
	case req.DeliveryAddress.City == "":
		return "deliveryAddress.city"
	case req.DeliveryAddress.ZipCode == "":
		return "deliveryAddress.zipCode"
	case req.PaymentMethod == "":
		return "paymentMethod"
	case req.Email == "":
		return "email"
	default:
		return ""
	}
}

// recordCustomer keeps a back-office customer row for each ordering email.
// Failures are logged by the store wrapper and never fail the placed order,
// so the unique-email conflict on repeat customers is simply ignored.
func (h *OrderHandler) recordCustomer(req placeOrderRequest) {
	if _, err := h.Store.GetUserByEmail(req.Email); err == nil {
		return
	}
	_ = h.Store.CreateUser(&models.User{Name: req.Name, Email: req.Email, Role: "customer"})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Store.GetOrderByID(r.PathValue("id"))
	if err != nil {
		respondStoreError(w, err, "order")
		return
	}
	respondData(w, order)
}
