package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken          = "EMAIL_TAKEN"
	ErrCodeSKUTaken            = "SKU_TAKEN"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidCoupon       = "INVALID_COUPON"
	ErrCodeCouponExpired       = "COUPON_EXPIRED"
	ErrCodeCouponExhausted     = "COUPON_EXHAUSTED"
	ErrCodeCouponMinOrder      = "COUPON_MIN_ORDER_NOT_MET"
	ErrCodeOrderNotCancellable = "ORDER_NOT_CANCELLABLE"
	ErrCodeInvalidTransition   = "INVALID_STATUS_TRANSITION"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business rule violation with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
	Details []string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorf creates a new domain error with a formatted message.
func NewDomainErrorf(code, format string, args ...any) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrFAQNotFound        = NewDomainError(ErrCodeNotFound, "FAQ not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrUserNotFound       = NewDomainError(ErrCodeNotFound, "User not found")
	ErrCouponNotFound     = NewDomainError(ErrCodeNotFound, "Coupon not found")
	ErrVideoNotFound      = NewDomainError(ErrCodeNotFound, "Video not found")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrSKUTaken           = NewDomainError(ErrCodeSKUTaken, "A product with this SKU already exists")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrInvalidCoupon      = NewDomainError(ErrCodeInvalidCoupon, "Coupon code is not valid")
	ErrCouponExpired      = NewDomainError(ErrCodeCouponExpired, "Coupon code has expired")
	ErrCouponExhausted    = NewDomainError(ErrCodeCouponExhausted, "Coupon usage limit has been reached")
)

// ErrorResponse represents a standardised error response body.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   ErrorDetails `json:"error"`
}

// ErrorDetails carries the code and human-readable message of an API error.
type ErrorDetails struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
