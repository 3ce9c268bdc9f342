package handlers

import (
	"image"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/Balogunsamuel/grocery-shop-web/internal/models"
	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

const (
	maxUploadBytes  = 10 << 20
	uploadImageSize = 800
	jpegQuality     = 80
)

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	q := store.ProductListQuery{
		Search:          r.URL.Query().Get("search"),
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
		Limit:           size,
		Offset:          (page - 1) * size,
	}
	if cid := r.URL.Query().Get("category"); cid != "" {
		if n, err := strconv.Atoi(cid); err == nil {
			q.CategoryID = n
		}
	}

	products, total, err := h.Store.ListProducts(q)
	if err != nil {
		respondStoreError(w, err, "products")
		return
	}
	respondPage(w, products, page, size, total)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeBody(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProduct(&p); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.Store.CreateProduct(&p); err != nil {
		respondStoreError(w, err, "product")
		return
	}
	respondCreated(w, p)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	// Decode over the stored row so omitted fields keep their values.
	p, err := h.Store.GetProductByID(id)
	if err != nil {
		respondStoreError(w, err, "product")
		return
	}
	if err := decodeBody(r, p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProduct(p); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	p.ID = id

	if err := h.Store.UpdateProduct(p); err != nil {
		respondStoreError(w, err, "product")
		return
	}
	respondData(w, p)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := h.Store.DeleteProduct(id); err != nil {
		respondStoreError(w, err, "product")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "product deleted"})
}

// UploadProductImage accepts a multipart form with an "image" field,
// resizes it down to a fixed width and stores it as JPEG under the
// upload directory with a fresh name.
func (h *AdminHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if _, err := h.Store.GetProductByID(id); err != nil {
		respondStoreError(w, err, "product")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unsupported image format")
		return
	}

	path, err := h.saveImage(img)
	if err != nil {
		slog.Error("Failed to save image", "error", err, "product_id", id)
		respondError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	if err := h.Store.SetProductImage(id, path); err != nil {
		respondStoreError(w, err, "product")
		return
	}
	respondData(w, map[string]string{"image": path})
}

func (h *AdminHandler) saveImage(img image.Image) (string, error) {
	if img.Bounds().Dx() > uploadImageSize {
		img = resize.Resize(uploadImageSize, 0, img, resize.Lanczos3)
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating upload dir")
	}
	name := uuid.New().String() + ".jpg"
	out, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", errors.Wrap(err, "creating image file")
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", errors.Wrap(err, "encoding image")
	}
	return "/static/uploads/" + name, nil
}

func validateProduct(p *models.Product) string {
	if strings.TrimSpace(p.Name) == "" {
		return "name is required"
	}
	if p.Price <= 0 {
		return "price must be positive"
	}
	if p.CategoryID <= 0 {
		return "category is required"
	}
	if p.StockCount < 0 {
		return "stock count cannot be negative"
	}
	return ""
}
