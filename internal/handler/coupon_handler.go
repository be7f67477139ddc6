package handler

import (
	"net/http"

	"glowkart/internal/model"
	"glowkart/internal/service"

	"github.com/rs/zerolog"
)

// CouponHandler handles coupon management and the public validation endpoint.
type CouponHandler struct {
	coupons service.CouponService
	logger  zerolog.Logger
}

// NewCouponHandler creates a new coupon handler.
func NewCouponHandler(coupons service.CouponService, logger zerolog.Logger) *CouponHandler {
	return &CouponHandler{
		coupons: coupons,
		logger:  logger.With().Str("handler", "coupon").Logger(),
	}
}

// List handles GET /api/admin/coupons.
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	coupons, err := h.coupons.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, coupons)
}

// Create handles POST /api/admin/coupons.
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	coupon, err := h.coupons.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, coupon)
}

// Update handles PUT /api/admin/coupons/{id}.
func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.CouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	coupon, err := h.coupons.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, coupon)
}

// Delete handles DELETE /api/admin/coupons/{id}.
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.coupons.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"message": "Coupon deleted"})
}

// Validate handles POST /api/coupons/validate, letting the storefront preview
// a discount before checkout.
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req model.CouponValidateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if req.Subtotal < 0 {
		writeError(w, model.NewDomainError(model.ErrCodeValidation, "Subtotal cannot be negative"), h.logger)
		return
	}

	discount, err := h.coupons.Apply(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, model.CouponValidateResponse{
		Code:     service.NormalizeCode(req.Code),
		Discount: discount,
		Total:    req.Subtotal - discount,
	})
}
