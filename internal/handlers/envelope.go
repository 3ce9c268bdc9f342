package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

// Response is the uniform envelope every API route returns.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func newPagination(page, limit, total int) *Pagination {
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondData(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

func respondPage(w http.ResponseWriter, data interface{}, page, limit, total int) {
	respondJSON(w, http.StatusOK, Response{Success: true, Data: data, Pagination: newPagination(page, limit, total)})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, Response{Success: false, Error: msg})
}

// respondStoreError maps data-layer errors onto the envelope: a missing
// entity is the caller's 404, anything else is our 500.
func respondStoreError(w http.ResponseWriter, err error, entity string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return
	}
	slog.Error("store error", "entity", entity, "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// pageParams reads ?page and ?size with the admin-surface defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
