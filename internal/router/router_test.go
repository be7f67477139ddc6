package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glowkart/internal/auth"
	"glowkart/internal/handler"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter registers the full route table. Construction is the assertion
// that matters most: ServeMux panics at registration time when two patterns
// conflict, so any overlapping route fails this suite immediately.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	handlers := Handlers{
		Auth:      handler.NewAuthHandler(nil, logger),
		Product:   handler.NewProductHandler(nil, logger),
		Order:     handler.NewOrderHandler(nil, nil, logger),
		User:      handler.NewUserHandler(nil, logger),
		FAQ:       handler.NewFAQHandler(nil, logger),
		Coupon:    handler.NewCouponHandler(nil, logger),
		Video:     handler.NewVideoHandler(nil, logger),
		Analytics: handler.NewAnalyticsHandler(nil, logger),
	}

	var root http.Handler
	require.NotPanics(t, func() {
		root = New(handlers, tokens, logger)
	})
	return root
}

func TestNew_RegistersAllRoutes(t *testing.T) {
	root := newTestRouter(t)

	t.Run("Health endpoint responds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		root.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Customer routes sit behind auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()

		root.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Admin routes sit behind auth", func(t *testing.T) {
		for _, path := range []string{
			"/api/admin/products",
			"/api/admin/orders",
			"/api/admin/users",
			"/api/admin/faqs/categories/list",
			"/api/admin/analytics",
		} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			root.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("Preflight requests short-circuit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		rec := httptest.NewRecorder()

		root.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
