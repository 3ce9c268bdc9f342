package handlers

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/checkout"
)

// PaymentHandler exposes the gateway's intent lifecycle to clients that
// drive the payment steps themselves.
type PaymentHandler struct {
	Gateway checkout.Gateway
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	intent, err := h.Gateway.CreateIntent(r.Context(), req.Amount, req.Currency)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to create payment intent")
		return
	}
	respondData(w, intent)
}

func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentIntentID string `json:"paymentIntentId"`
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PaymentIntentID == "" {
		respondError(w, http.StatusBadRequest, "paymentIntentId is required")
		return
	}

	confirmation, err := h.Gateway.Confirm(r.Context(), req.PaymentIntentID, req.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrIntentNotFound):
			respondError(w, http.StatusNotFound, "payment intent not found")
		case errors.Is(err, checkout.ErrPaymentDeclined):
			respondError(w, http.StatusPaymentRequired, "payment declined")
		default:
			respondError(w, http.StatusBadGateway, "payment confirmation failed")
		}
		return
	}
	respondData(w, confirmation)
}
