package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	status := models.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !models.ValidOrderStatus(status) {
		respondError(w, http.StatusBadRequest, "invalid order status")
		return
	}

	orders, total, err := h.Store.ListOrders(status, size, (page-1)*size)
	if err != nil {
		respondStoreError(w, err, "orders")
		return
	}
	respondPage(w, orders, page, size, total)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "invalid order status")
		return
	}

	if err := h.Store.UpdateOrderStatus(id, req.Status); err != nil {
		respondStoreError(w, err, "order")
		return
	}
	slog.Info("order status updated", "order_id", id, "status", req.Status)

	order, err := h.Store.GetOrderByID(id)
	if err != nil {
		respondStoreError(w, err, "order")
		return
	}
	respondData(w, order)
}

func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	customers, total, err := h.Store.ListCustomers(size, (page-1)*size)
	if err != nil {
		respondStoreError(w, err, "customers")
		return
	}
	respondPage(w, customers, page, size, total)
}

func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	payments, total, err := h.Store.ListPayments(size, (page-1)*size)
	if err != nil {
		respondStoreError(w, err, "payments")
		return
	}
	respondPage(w, payments, page, size, total)
}
