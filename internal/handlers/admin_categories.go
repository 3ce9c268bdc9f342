package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
)

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(true)
	if err != nil {
		respondStoreError(w, err, "categories")
		return
	}
	respondData(w, categories)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeBody(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(c.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.Store.CreateCategory(&c); err != nil {
		respondStoreError(w, err, "category")
		return
	}
	respondCreated(w, c)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	// Decode over the stored row so omitted fields keep their values.
	c, err := h.Store.GetCategoryByID(id)
	if err != nil {
		respondStoreError(w, err, "category")
		return
	}
	if err := decodeBody(r, c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(c.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	c.ID = id

	if err := h.Store.UpdateCategory(c); err != nil {
		respondStoreError(w, err, "category")
		return
	}
	respondData(w, c)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := h.Store.DeleteCategory(id); err != nil {
		respondStoreError(w, err, "category")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "category deleted"})
}
