package model

import (
	"time"

	"github.com/google/uuid"
)

// Coupon discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount code with either a percentage or fixed-amount reduction.
type Coupon struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Code          string     `json:"code" db:"code"`
	DiscountType  string     `json:"discountType" db:"discount_type"`
	DiscountValue float64    `json:"discountValue" db:"discount_value"`
	MinOrderValue float64    `json:"minOrderValue" db:"min_order_value"`
	MaxDiscount   float64    `json:"maxDiscount" db:"max_discount"`
	UsageLimit    int        `json:"usageLimit" db:"usage_limit"`
	UsedCount     int        `json:"usedCount" db:"used_count"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty" db:"expiry_date"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// CouponRequest represents the payload for creating or updating a coupon.
type CouponRequest struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue float64    `json:"minOrderValue"`
	MaxDiscount   float64    `json:"maxDiscount"`
	UsageLimit    int        `json:"usageLimit"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	IsActive      *bool      `json:"isActive"`
}

// CouponValidateRequest asks for a discount preview against a cart subtotal.
type CouponValidateRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// CouponValidateResponse is the discount preview for a coupon code.
type CouponValidateResponse struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}
