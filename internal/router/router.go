package router

import (
	"net/http"

	"glowkart/internal/auth"
	"glowkart/internal/handler"
	"glowkart/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	User      *handler.UserHandler
	FAQ       *handler.FAQHandler
	Coupon    *handler.CouponHandler
	Video     *handler.VideoHandler
	Analytics *handler.AnalyticsHandler
}

// New creates the HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.TokenManager, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.JWTAuth(tokens, logger)
	admin := func(fn http.HandlerFunc) http.Handler {
		return authed(middleware.RequireAdmin(logger)(fn))
	}
	customer := func(fn http.HandlerFunc) http.Handler {
		return authed(fn)
	}

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public storefront routes
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)
	mux.HandleFunc("GET /api/faqs", h.FAQ.ListPublic)
	mux.HandleFunc("GET /api/faqs/categories", h.FAQ.Categories)
	mux.HandleFunc("GET /api/videos", h.Video.ListPublic)
	// Tracking lives under its own prefix: a pattern inside /api/orders would
	// conflict with "GET /api/orders/{id}/invoice" under ServeMux precedence.
	mux.HandleFunc("GET /api/track/{orderNumber}", h.Order.Track)
	mux.HandleFunc("POST /api/coupons/validate", h.Coupon.Validate)

	// Authenticated customer routes
	mux.Handle("GET /api/users/profile", customer(h.User.GetProfile))
	mux.Handle("PUT /api/users/profile", customer(h.User.UpdateProfile))
	mux.Handle("POST /api/orders", customer(h.Order.Place))
	mux.Handle("GET /api/orders", customer(h.Order.ListMine))
	mux.Handle("GET /api/orders/counts", customer(h.Order.Counts))
	mux.Handle("GET /api/orders/{id}", customer(h.Order.GetByID))
	mux.Handle("POST /api/orders/{id}/cancel", customer(h.Order.Cancel))
	mux.Handle("GET /api/orders/{id}/invoice", customer(h.Order.Invoice))

	// Admin routes
	mux.Handle("GET /api/admin/products", admin(h.Product.ListAdmin))
	mux.Handle("POST /api/admin/products", admin(h.Product.Create))
	mux.Handle("GET /api/admin/products/{id}", admin(h.Product.GetByIDAdmin))
	mux.Handle("PUT /api/admin/products/{id}", admin(h.Product.Update))
	mux.Handle("DELETE /api/admin/products/{id}", admin(h.Product.Delete))
	mux.Handle("POST /api/admin/products/{id}/images", admin(h.Product.UploadImage))

	mux.Handle("GET /api/admin/orders", admin(h.Order.ListAll))
	mux.Handle("GET /api/admin/orders/{id}", admin(h.Order.GetByID))
	mux.Handle("PUT /api/admin/orders/{id}/status", admin(h.Order.UpdateStatus))

	mux.Handle("GET /api/admin/users", admin(h.User.List))
	mux.Handle("PUT /api/admin/users/{id}/active", admin(h.User.SetActive))

	mux.Handle("GET /api/admin/faqs", admin(h.FAQ.ListAdmin))
	mux.Handle("GET /api/admin/faqs/categories/list", admin(h.FAQ.CategoriesAdmin))
	mux.Handle("GET /api/admin/faqs/{id}", admin(h.FAQ.GetByID))
	mux.Handle("POST /api/admin/faqs", admin(h.FAQ.Create))
	mux.Handle("PUT /api/admin/faqs/{id}", admin(h.FAQ.Update))
	mux.Handle("DELETE /api/admin/faqs/{id}", admin(h.FAQ.Delete))

	mux.Handle("GET /api/admin/coupons", admin(h.Coupon.List))
	mux.Handle("POST /api/admin/coupons", admin(h.Coupon.Create))
	mux.Handle("PUT /api/admin/coupons/{id}", admin(h.Coupon.Update))
	mux.Handle("DELETE /api/admin/coupons/{id}", admin(h.Coupon.Delete))

	mux.Handle("GET /api/admin/videos", admin(h.Video.ListAdmin))
	mux.Handle("POST /api/admin/videos", admin(h.Video.Create))
	mux.Handle("PUT /api/admin/videos/{id}", admin(h.Video.Update))
	mux.Handle("DELETE /api/admin/videos/{id}", admin(h.Video.Delete))

	mux.Handle("GET /api/admin/analytics", admin(h.Analytics.Report))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
