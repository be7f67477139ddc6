package handler

import (
	"net/http"

	"glowkart/internal/model"
	"glowkart/internal/service"

	"github.com/rs/zerolog"
)

// maxImageUploadBytes bounds product image uploads.
const maxImageUploadBytes = 10 << 20

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products service.ProductService
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	filter := model.ProductFilter{
		Category:     r.URL.Query().Get("category"),
		ActiveOnly:   activeOnly,
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
		Limit:        limit,
		Offset:       offset,
	}

	products, err := h.products.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, products)
}

// List handles GET /api/products. Only active products are visible.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAdmin handles GET /api/admin/products, inactive products included.
func (h *ProductHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *ProductHandler) getByID(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.products.GetByID(r.Context(), id, includeInactive)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, product)
}

// GetByID handles GET /api/products/{id}. Inactive products 404.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, false)
}

// GetByIDAdmin handles GET /api/admin/products/{id}, inactive products included.
func (h *ProductHandler) GetByIDAdmin(w http.ResponseWriter, r *http.Request) {
	h.getByID(w, r, true)
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.products.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.products.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// UploadImage handles POST /api/admin/products/{id}/images with a multipart
// form carrying the file in the "image" field.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		writeError(w, model.NewDomainError(model.ErrCodeValidation, "Invalid multipart form"), h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, model.NewDomainError(model.ErrCodeValidation, "Image file is required"), h.logger)
		return
	}
	defer file.Close()

	url, err := h.products.AttachImage(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, map[string]string{"url": url})
}
