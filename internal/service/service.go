package service

import (
	"context"
	"io"

	"glowkart/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves products with pagination. Public callers see active
	// products only.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Inactive products are only
	// returned when includeInactive is set; the storefront never sees them.
	GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update overwrites a product's fields from the request.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachImage stores an uploaded image and appends its URL to the product.
	AttachImage(ctx context.Context, id uuid.UUID, filename, contentType string, content io.Reader) (string, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// PlaceOrder creates a new order, validating stock and applying any coupon.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves an order visible to the given user (admins pass uuid.Nil).
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)

	// ListByUser retrieves a user's orders, optionally filtered by status.
	ListByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]model.Order, error)

	// ListAll retrieves all orders (admin).
	ListAll(ctx context.Context, status string, limit, offset int) ([]model.Order, error)

	// StatusCounts counts a user's orders per status.
	StatusCounts(ctx context.Context, userID uuid.UUID) (*model.StatusCounts, error)

	// Track resolves an order number into the order plus its display timeline.
	Track(ctx context.Context, orderNumber string) (*model.TrackResponse, error)

	// Cancel cancels an order and restocks its items. Only orders that have
	// not yet shipped can be cancelled.
	Cancel(ctx context.Context, userID, orderID uuid.UUID, reason string) (*model.Order, error)

	// UpdateStatus advances an order along the fulfilment flow (admin).
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.StatusUpdateRequest) (*model.Order, error)
}

// UserService defines account and profile operations.
type UserService interface {
	// Register creates a new customer account and returns it with a token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)

	// Login authenticates a user and returns a bearer token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.ProfileUpdateRequest) (*model.User, error)

	// List retrieves users (admin).
	List(ctx context.Context, limit, offset int) ([]model.User, error)

	// SetActive enables or disables an account (admin).
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

// FAQService defines FAQ content management and public listing.
type FAQService interface {
	// ListAdmin retrieves FAQs for the admin panel, including inactive ones.
	ListAdmin(ctx context.Context, filter model.FAQFilter) ([]model.FAQ, error)

	// ListPublic retrieves active FAQs in their storefront representation.
	ListPublic(ctx context.Context, category string) ([]model.PublicFAQ, error)

	// GetByID retrieves a FAQ by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error)

	// Create adds a FAQ, applying defaults for omitted fields.
	Create(ctx context.Context, req *model.FAQRequest) (*model.FAQ, error)

	// Update applies a partial FAQ update.
	Update(ctx context.Context, id uuid.UUID, req *model.FAQUpdateRequest) (*model.FAQ, error)

	// Delete removes a FAQ.
	Delete(ctx context.Context, id uuid.UUID) error

	// Categories lists distinct FAQ categories. When activeOnly is set, only
	// categories referenced by at least one active FAQ are returned.
	Categories(ctx context.Context, activeOnly bool) ([]string, error)
}

// CouponService defines coupon management and discount computation.
type CouponService interface {
	// List retrieves coupons (admin).
	List(ctx context.Context, limit, offset int) ([]model.Coupon, error)

	// Create adds a coupon.
	Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error)

	// Update overwrites a coupon's fields from the request.
	Update(ctx context.Context, id uuid.UUID, req *model.CouponRequest) (*model.Coupon, error)

	// Delete removes a coupon.
	Delete(ctx context.Context, id uuid.UUID) error

	// Apply computes the discount a code grants against a subtotal without
	// consuming a use.
	Apply(ctx context.Context, code string, subtotal float64) (float64, error)
}

// VideoService defines video content management.
type VideoService interface {
	// ListPublic retrieves active videos for the storefront.
	ListPublic(ctx context.Context) ([]model.Video, error)

	// ListAdmin retrieves all videos for the admin panel.
	ListAdmin(ctx context.Context) ([]model.Video, error)

	// Create adds a video.
	Create(ctx context.Context, req *model.VideoRequest) (*model.Video, error)

	// Update overwrites a video's fields from the request.
	Update(ctx context.Context, id uuid.UUID, req *model.VideoRequest) (*model.Video, error)

	// Delete removes a video.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalyticsService builds the admin dashboard report.
type AnalyticsService interface {
	// Report aggregates order totals, status shares, monthly revenue and top
	// products.
	Report(ctx context.Context) (*model.AnalyticsReport, error)
}

// InvoiceService renders printable invoices.
type InvoiceService interface {
	// Render produces the HTML invoice for an order.
	Render(order *model.Order) ([]byte, error)
}
