package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. The fulfilment flow is a linear progression; Cancelled is a
// terminal branch reachable from any non-terminal status.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// OrderStatuses lists every order status, in fulfilment order with the
// terminal cancelled branch last.
var OrderStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order represents a customer purchase.
type Order struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	OrderNumber    string      `json:"orderNumber" db:"order_number"`
	UserID         uuid.UUID   `json:"userId" db:"user_id"`
	Status         string      `json:"status" db:"status"`
	PaymentStatus  string      `json:"paymentStatus" db:"payment_status"`
	Items          []OrderItem `json:"items" db:"-"`
	Subtotal       float64     `json:"subtotal" db:"subtotal"`
	Discount       float64     `json:"discount" db:"discount"`
	ShippingCost   float64     `json:"shippingCost" db:"shipping_cost"`
	Total          float64     `json:"total" db:"total"`
	CouponCode     *string     `json:"couponCode,omitempty" db:"coupon_code"`
	ShippingAddr   Address     `json:"shippingAddress" db:"shipping_address"`
	TrackingNumber string      `json:"trackingNumber,omitempty" db:"tracking_number"`
	CancelReason   string      `json:"cancelReason,omitempty" db:"cancel_reason"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item. Name and unit price are snapshots taken at order
// time so later catalogue edits do not rewrite order history.
type OrderItem struct {
	ID          uuid.UUID `json:"-" db:"id"`
	OrderID     uuid.UUID `json:"-" db:"order_id"`
	ProductID   uuid.UUID `json:"productId" db:"product_id"`
	ProductName string    `json:"productName" db:"product_name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	UnitPrice   float64   `json:"unitPrice" db:"unit_price"`
	CameraModel string    `json:"cameraModel,omitempty" db:"camera_model"`
	LensModel   string    `json:"lensModel,omitempty" db:"lens_model"`
	FlashModel  string    `json:"flashModel,omitempty" db:"flash_model"`
}

// OrderRequest represents the payload for placing an order.
type OrderRequest struct {
	CouponCode   *string            `json:"couponCode,omitempty"`
	Items        []OrderItemRequest `json:"items"`
	ShippingAddr Address            `json:"shippingAddress"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	ProductID   uuid.UUID `json:"productId"`
	Quantity    int       `json:"quantity"`
	CameraModel string    `json:"cameraModel"`
	LensModel   string    `json:"lensModel"`
	FlashModel  string    `json:"flashModel"`
}

// CancelRequest carries the customer's reason for cancelling an order.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// StatusUpdateRequest is the admin payload for advancing an order.
type StatusUpdateRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
}

// StatusCounts maps each order status to the number of the user's orders in it.
type StatusCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// TimelineStep states for the tracking display.
const (
	StepDone    = "done"
	StepCurrent = "current"
	StepPending = "pending"
)

// TimelineStep is one entry of the five-step fulfilment display.
type TimelineStep struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	State  string `json:"state"`
}

// TrackResponse is the tracking view of an order: the order itself, the
// five-step progress timeline and whether the order ended in cancellation.
type TrackResponse struct {
	Order     *Order         `json:"order"`
	Timeline  []TimelineStep `json:"timeline"`
	Cancelled bool           `json:"cancelled"`
}
