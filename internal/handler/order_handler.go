package handler

import (
	"net/http"

	"glowkart/internal/middleware"
	"glowkart/internal/model"
	"glowkart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orders   service.OrderService
	invoices service.InvoiceService
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, invoices service.InvoiceService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		invoices: invoices,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), middleware.UserID(r.Context()), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, order)
}

// ListMine handles GET /api/orders for the authenticated customer.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), middleware.UserID(r.Context()),
		r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, orders)
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	orders, err := h.orders.ListAll(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, orders)
}

// callerID resolves the ownership filter: admins see every order.
func callerID(r *http.Request) uuid.UUID {
	if middleware.Role(r.Context()) == model.RoleAdmin {
		return uuid.Nil
	}
	return middleware.UserID(r.Context())
}

// GetByID handles GET /api/orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.orders.GetByID(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, order)
}

// Counts handles GET /api/orders/counts.
func (h *OrderHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.orders.StatusCounts(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, counts)
}

// Track handles GET /api/track/{orderNumber}. Public: the order number itself
// is the credential.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.Track(r.Context(), r.PathValue("orderNumber"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, resp)
}

// Cancel handles POST /api/orders/{id}/cancel.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.CancelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.orders.Cancel(r.Context(), callerID(r), id, req.Reason)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, order)
}

// Invoice handles GET /api/orders/{id}/invoice, returning printable HTML.
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.orders.GetByID(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	html, err := h.invoices.Render(order)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, order)
}
