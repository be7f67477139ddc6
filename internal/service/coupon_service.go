package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowkart/internal/model"
	"glowkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// couponService implements CouponService.
type couponService struct {
	couponRepo repository.CouponRepository
	logger     zerolog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(couponRepo repository.CouponRepository, logger zerolog.Logger) CouponService {
	return &couponService{
		couponRepo: couponRepo,
		logger:     logger.With().Str("service", "coupon").Logger(),
	}
}

// NormalizeCode canonicalises a coupon code for lookup and storage.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// List retrieves coupons (admin).
func (s *couponService) List(ctx context.Context, limit, offset int) ([]model.Coupon, error) {
	limit, offset = clampPagination(limit, offset)

	coupons, err := s.couponRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list coupons")
		return nil, fmt.Errorf("failed to get coupons: %w", err)
	}

	return coupons, nil
}

func validateCouponRequest(req *model.CouponRequest) error {
	if NormalizeCode(req.Code) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Coupon code is required")
	}
	if req.DiscountType != model.DiscountPercentage && req.DiscountType != model.DiscountFixed {
		return model.NewDomainErrorf(model.ErrCodeValidation,
			"Discount type must be %q or %q", model.DiscountPercentage, model.DiscountFixed)
	}
	if req.DiscountValue <= 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Discount value must be greater than zero")
	}
	if req.DiscountType == model.DiscountPercentage && req.DiscountValue > 100 {
		return model.NewDomainError(model.ErrCodeValidation, "Percentage discount cannot exceed 100")
	}
	if req.MinOrderValue < 0 || req.MaxDiscount < 0 || req.UsageLimit < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Coupon limits cannot be negative")
	}
	return nil
}

func applyCouponRequest(c *model.Coupon, req *model.CouponRequest) {
	c.Code = NormalizeCode(req.Code)
	c.DiscountType = req.DiscountType
	c.DiscountValue = req.DiscountValue
	c.MinOrderValue = req.MinOrderValue
	c.MaxDiscount = req.MaxDiscount
	c.UsageLimit = req.UsageLimit
	c.ExpiryDate = req.ExpiryDate
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
}

// Create adds a coupon.
func (s *couponService) Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	if err := validateCouponRequest(req); err != nil {
		return nil, err
	}

	code := NormalizeCode(req.Code)
	existing, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check coupon code: %w", err)
	}
	if existing != nil {
		return nil, model.NewDomainErrorf(model.ErrCodeValidation, "Coupon code %s already exists", code)
	}

	now := time.Now()
	coupon := &model.Coupon{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCouponRequest(coupon, req)

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		s.logger.Error().Err(err).Str("code", coupon.Code).Msg("failed to create coupon")
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	s.logger.Info().Str("code", coupon.Code).Msg("coupon created")

	return coupon, nil
}

// Update overwrites a coupon's fields from the request.
func (s *couponService) Update(ctx context.Context, id uuid.UUID, req *model.CouponRequest) (*model.Coupon, error) {
	if err := validateCouponRequest(req); err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	if coupon == nil {
		return nil, model.ErrCouponNotFound
	}

	applyCouponRequest(coupon, req)
	coupon.UpdatedAt = time.Now()

	found, err := s.couponRepo.Update(ctx, coupon)
	if err != nil {
		s.logger.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to update coupon")
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}
	if !found {
		return nil, model.ErrCouponNotFound
	}

	return coupon, nil
}

// Delete removes a coupon.
func (s *couponService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.couponRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to delete coupon")
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if !found {
		return model.ErrCouponNotFound
	}

	return nil
}

// Apply computes the discount a code grants against a subtotal without
// consuming a use.
func (s *couponService) Apply(ctx context.Context, code string, subtotal float64) (float64, error) {
	code = NormalizeCode(code)

	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if coupon == nil || !coupon.IsActive {
		s.logger.Debug().Str("code", code).Msg("coupon invalid or inactive")
		return 0, model.ErrInvalidCoupon
	}

	if coupon.ExpiryDate != nil && coupon.ExpiryDate.Before(time.Now()) {
		s.logger.Debug().Str("code", code).Time("expiry", *coupon.ExpiryDate).Msg("coupon expired")
		return 0, model.ErrCouponExpired
	}

	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		s.logger.Debug().Str("code", code).Int("used", coupon.UsedCount).Msg("coupon exhausted")
		return 0, model.ErrCouponExhausted
	}

	if subtotal < coupon.MinOrderValue {
		return 0, model.NewDomainErrorf(model.ErrCodeCouponMinOrder,
			"Order subtotal must be at least %.2f to use this coupon", coupon.MinOrderValue)
	}

	var discount float64
	switch coupon.DiscountType {
	case model.DiscountPercentage:
		discount = subtotal * coupon.DiscountValue / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	case model.DiscountFixed:
		discount = coupon.DiscountValue
	default:
		return 0, model.ErrInvalidCoupon
	}

	// A discount never exceeds the subtotal.
	if discount > subtotal {
		discount = subtotal
	}

	s.logger.Debug().
		Str("code", code).
		Float64("subtotal", subtotal).
		Float64("discount", discount).
		Msg("coupon applied")

	return discount, nil
}
