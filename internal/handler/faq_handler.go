package handler

import (
	"net/http"

	"glowkart/internal/model"
	"glowkart/internal/service"

	"github.com/rs/zerolog"
)

// FAQHandler handles FAQ content requests.
type FAQHandler struct {
	faqs   service.FAQService
	logger zerolog.Logger
}

// NewFAQHandler creates a new FAQ handler.
func NewFAQHandler(faqs service.FAQService, logger zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		faqs:   faqs,
		logger: logger.With().Str("handler", "faq").Logger(),
	}
}

// ListPublic handles GET /api/faqs.
func (h *FAQHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqs.ListPublic(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, faqs)
}

// Categories handles GET /api/faqs/categories.
func (h *FAQHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.faqs.Categories(r.Context(), true)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, categories)
}

// ListAdmin handles GET /api/admin/faqs, inactive entries included. An
// optional active=true|false query narrows the list.
func (h *FAQHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	filter := model.FAQFilter{Category: r.URL.Query().Get("category")}
	switch r.URL.Query().Get("active") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	faqs, err := h.faqs.ListAdmin(r.Context(), filter)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, faqs)
}

// CategoriesAdmin handles GET /api/admin/faqs/categories.
func (h *FAQHandler) CategoriesAdmin(w http.ResponseWriter, r *http.Request) {
	categories, err := h.faqs.Categories(r.Context(), false)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, categories)
}

// GetByID handles GET /api/admin/faqs/{id}.
func (h *FAQHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	faq, err := h.faqs.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, faq)
}

// Create handles POST /api/admin/faqs.
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.FAQRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	faq, err := h.faqs.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, faq)
}

// Update handles PUT /api/admin/faqs/{id}.
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.FAQUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	faq, err := h.faqs.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, faq)
}

// Delete handles DELETE /api/admin/faqs/{id}.
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.faqs.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"message": "FAQ deleted"})
}
