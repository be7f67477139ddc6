package repository

import (
	"context"

	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the filter, ordered by name.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// GetBySKU retrieves a single product by its SKU. Returns nil when absent.
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, p *model.Product) error

	// Update overwrites an existing product. Returns false when absent.
	Update(ctx context.Context, p *model.Product) (bool, error)

	// Delete removes a product. Returns false when absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// AppendImage adds an image URL to a product's image list.
	AppendImage(ctx context.Context, id uuid.UUID, url string) (bool, error)

	// DecrementStock atomically decrements stock within the transaction.
	// Returns false when the product has insufficient stock.
	DecrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, qty int) (bool, error)

	// RestoreStock adds quantity back to a product's stock within the transaction.
	RestoreStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, qty int) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateItems inserts multiple order items within the provided transaction.
	CreateItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByOrderNumber retrieves an order by its order number. Returns nil when absent.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// ListByUser retrieves a user's orders, newest first, optionally filtered by status.
	ListByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]model.Order, error)

	// ListAll retrieves all orders, newest first, optionally filtered by status.
	ListAll(ctx context.Context, status string, limit, offset int) ([]model.Order, error)

	// CountByStatus counts a user's orders grouped by status.
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error)

	// UpdateStatus sets an order's status and optional tracking number.
	UpdateStatus(ctx context.Context, id uuid.UUID, status, trackingNumber string) (bool, error)

	// Cancel marks an order cancelled within the transaction, recording the
	// reason. Returns false when the order is absent or no longer in a
	// cancellable status, so a racing cancel or shipment wins exactly once.
	Cancel(ctx context.Context, tx pgx.Tx, id uuid.UUID, reason string) (bool, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *model.User) error

	// GetByID retrieves a user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update overwrites a user's mutable profile fields. Returns false when absent.
	Update(ctx context.Context, u *model.User) (bool, error)

	// List retrieves users, newest first.
	List(ctx context.Context, limit, offset int) ([]model.User, error)

	// SetActive flips a user's active flag. Returns false when absent.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
}

// FAQRepository defines the interface for FAQ data access operations.
type FAQRepository interface {
	// List retrieves FAQs matching the filter, ordered by sort_order
	// ascending with created_at descending as tiebreak.
	List(ctx context.Context, filter model.FAQFilter) ([]model.FAQ, error)

	// GetByID retrieves a FAQ by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FAQ, error)

	// Create inserts a new FAQ.
	Create(ctx context.Context, f *model.FAQ) error

	// Update overwrites an existing FAQ. Returns false when absent.
	Update(ctx context.Context, f *model.FAQ) (bool, error)

	// Delete removes a FAQ. Returns false when absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Categories lists the distinct categories, optionally restricted to active FAQs.
	Categories(ctx context.Context, activeOnly bool) ([]string, error)
}

// CouponRepository defines the interface for coupon data access operations.
type CouponRepository interface {
	// List retrieves all coupons, newest first.
	List(ctx context.Context, limit, offset int) ([]model.Coupon, error)

	// GetByID retrieves a coupon by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)

	// GetByCode retrieves a coupon by its (uppercased) code. Returns nil when absent.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)

	// Create inserts a new coupon.
	Create(ctx context.Context, c *model.Coupon) error

	// Update overwrites an existing coupon. Returns false when absent.
	Update(ctx context.Context, c *model.Coupon) (bool, error)

	// Delete removes a coupon. Returns false when absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Redeem increments a coupon's used_count within the transaction,
	// failing when the usage limit is already reached.
	Redeem(ctx context.Context, tx pgx.Tx, code string) (bool, error)
}

// VideoRepository defines the interface for video data access operations.
type VideoRepository interface {
	// List retrieves videos ordered by sort_order, optionally active-only.
	List(ctx context.Context, activeOnly bool) ([]model.Video, error)

	// GetByID retrieves a video by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// Create inserts a new video.
	Create(ctx context.Context, v *model.Video) error

	// Update overwrites an existing video. Returns false when absent.
	Update(ctx context.Context, v *model.Video) (bool, error)

	// Delete removes a video. Returns false when absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AnalyticsRepository defines the aggregate queries behind the admin dashboard.
type AnalyticsRepository interface {
	// Totals returns the overall order count and revenue, excluding cancelled orders.
	Totals(ctx context.Context) (orders int, revenue float64, err error)

	// CountByStatus counts all orders grouped by status.
	CountByStatus(ctx context.Context) (map[string]int, error)

	// MonthlyRevenue aggregates order count and revenue per calendar month,
	// excluding cancelled orders, oldest month first.
	MonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error)

	// TopProducts ranks products by total ordered quantity, excluding
	// cancelled orders.
	TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error)
}
