package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glowkart/internal/auth"
	"glowkart/internal/handler"
	"glowkart/internal/media"
	"glowkart/internal/model"
	"glowkart/internal/repository"
	"glowkart/internal/router"
	"glowkart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	userRepo := repository.NewUserRepository(testDB.Pool, logger)
	faqRepo := repository.NewFAQRepository(testDB.Pool, logger)
	couponRepo := repository.NewCouponRepository(testDB.Pool, logger)
	videoRepo := repository.NewVideoRepository(testDB.Pool, logger)
	analyticsRepo := repository.NewAnalyticsRepository(testDB.Pool, logger)

	mediaStore, err := media.NewFileStore(t.TempDir(), "/media", logger)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("integration-secret", time.Hour)

	productService := service.NewProductService(productRepo, mediaStore, logger)
	couponService := service.NewCouponService(couponRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, couponRepo, couponService, logger)
	userService := service.NewUserService(userRepo, tokens, logger)
	faqService := service.NewFAQService(faqRepo, logger)
	videoService := service.NewVideoService(videoRepo, logger)
	analyticsService := service.NewAnalyticsService(analyticsRepo, logger)
	invoiceService := service.NewInvoiceService(logger)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(userService, logger),
		Product:   handler.NewProductHandler(productService, logger),
		Order:     handler.NewOrderHandler(orderService, invoiceService, logger),
		User:      handler.NewUserHandler(userService, logger),
		FAQ:       handler.NewFAQHandler(faqService, logger),
		Coupon:    handler.NewCouponHandler(couponService, logger),
		Video:     handler.NewVideoHandler(videoService, logger),
		Analytics: handler.NewAnalyticsHandler(analyticsService, logger),
	}

	return router.New(handlers, tokens, logger)
}

// doJSON performs a request against the test server, encoding body as JSON and
// attaching the bearer token when given.
func doJSON(t *testing.T, server http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the "data" field of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", envelope.Data)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, server http.Handler, name, email string) string {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/api/auth/register", "", model.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var login model.LoginResponse
	decodeData(t, rec, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// loginAs authenticates an already seeded user and returns its token.
func loginAs(t *testing.T, server http.Handler, email, password string) string {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login model.LoginResponse
	decodeData(t, rec, &login)
	return login.Token
}

func TestAuthAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Register then login", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		registerUser(t, server, "Ana", "ana@example.com")

		token := loginAs(t, server, "ana@example.com", "password123")
		assert.NotEmpty(t, token)
	})

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		registerUser(t, server, "Ana", "ana@example.com")

		rec := doJSON(t, server, http.MethodPost, "/api/auth/register", "", model.RegisterRequest{
			Name: "Other", Email: "ana@example.com", Password: "password123",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Wrong password is unauthorized", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		registerUser(t, server, "Ana", "ana@example.com")

		rec := doJSON(t, server, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
			Email: "ana@example.com", Password: "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Profile requires a token", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/users/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStorefrontAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Product listing hides inactive products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		rec := doJSON(t, server, http.MethodGet, "/api/products", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []model.Product
		decodeData(t, rec, &products)
		assert.Len(t, products, 4)
	})

	t.Run("Inactive product is admin-only", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		products := SeedProducts(t, testDB.Pool)
		SeedUser(t, testDB.Pool, "Admin", "admin@glowkart.test", "admin-pass-1", model.RoleAdmin)
		adminToken := loginAs(t, server, "admin@glowkart.test", "admin-pass-1")

		retired := products[4]
		require.False(t, retired.IsActive)

		rec := doJSON(t, server, http.MethodGet, "/api/products/"+retired.ID.String(), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, server, http.MethodGet, "/api/admin/products/"+retired.ID.String(), adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Product
		decodeData(t, rec, &got)
		assert.Equal(t, retired.SKU, got.SKU)
		assert.False(t, got.IsActive)
	})

	t.Run("Coupon validation previews the discount", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCoupon(t, testDB.Pool, model.Coupon{
			Code: "TAKE5", DiscountType: model.DiscountFixed, DiscountValue: 5, IsActive: true,
		})

		rec := doJSON(t, server, http.MethodPost, "/api/coupons/validate", "", model.CouponValidateRequest{
			Code: "take5", Subtotal: 50,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var preview model.CouponValidateResponse
		decodeData(t, rec, &preview)
		assert.Equal(t, "TAKE5", preview.Code)
		assert.Equal(t, 5.0, preview.Discount)
		assert.Equal(t, 45.0, preview.Total)
	})

	t.Run("Admin routes reject customers", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		token := registerUser(t, server, "Ana", "ana@example.com")

		rec := doJSON(t, server, http.MethodGet, "/api/admin/orders", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestOrderFlowAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	CleanupDB(t, testDB.Pool)
	products := SeedProducts(t, testDB.Pool)
	SeedCoupon(t, testDB.Pool, model.Coupon{
		Code: "TAKE5", DiscountType: model.DiscountFixed, DiscountValue: 5, IsActive: true,
	})
	SeedUser(t, testDB.Pool, "Admin", "admin@glowkart.test", "admin-pass-1", model.RoleAdmin)

	customerToken := registerUser(t, server, "Ana", "ana@example.com")
	adminToken := loginAs(t, server, "admin@glowkart.test", "admin-pass-1")

	classic := products[0] // 24.99, shipping 4.50, stock 50
	couponCode := "TAKE5"

	var placed model.Order

	t.Run("Place order applies coupon and shipping", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/orders", customerToken, model.OrderRequest{
			CouponCode: &couponCode,
			Items: []model.OrderItemRequest{
				{ProductID: classic.ID, Quantity: 2, CameraModel: "Canon R6"},
			},
			ShippingAddr: model.Address{Street: "1 Glow St", City: "Leeds", Country: "UK"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		decodeData(t, rec, &placed)
		assert.Regexp(t, `^GK-\d{8}-[0-9A-F]{6}$`, placed.OrderNumber)
		assert.InDelta(t, 49.98, placed.Subtotal, 0.001)
		assert.InDelta(t, 5.0, placed.Discount, 0.001)
		assert.InDelta(t, 4.50, placed.ShippingCost, 0.001)
		assert.InDelta(t, 49.48, placed.Total, 0.001)
		require.Len(t, placed.Items, 1)
		assert.Equal(t, "Canon R6", placed.Items[0].CameraModel)
	})

	t.Run("Stock was decremented", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/products/"+classic.ID.String(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Product
		decodeData(t, rec, &got)
		assert.Equal(t, classic.Stock-2, got.Stock)
	})

	t.Run("Owner can fetch the order, others cannot", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/orders/"+placed.ID.String(), customerToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		otherToken := registerUser(t, server, "Ben", "ben@example.com")
		rec = doJSON(t, server, http.MethodGet, "/api/orders/"+placed.ID.String(), otherToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, server, http.MethodGet, "/api/admin/orders/"+placed.ID.String(), adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Public tracking returns the timeline", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/track/"+placed.OrderNumber, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var track model.TrackResponse
		decodeData(t, rec, &track)
		require.Len(t, track.Timeline, 5)
		assert.Equal(t, model.StepCurrent, track.Timeline[0].State)
		assert.False(t, track.Cancelled)
	})

	t.Run("Admin advances the order one step at a time", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPut, "/api/admin/orders/"+placed.ID.String()+"/status", adminToken,
			model.StatusUpdateRequest{Status: model.StatusShipped})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "skipping confirmed and processing must fail")

		rec = doJSON(t, server, http.MethodPut, "/api/admin/orders/"+placed.ID.String()+"/status", adminToken,
			model.StatusUpdateRequest{Status: model.StatusConfirmed})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated model.Order
		decodeData(t, rec, &updated)
		assert.Equal(t, model.StatusConfirmed, updated.Status)
	})

	t.Run("Invoice renders as HTML", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/orders/"+placed.ID.String()+"/invoice", customerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), placed.OrderNumber)
	})

	t.Run("Cancel restocks the items", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/orders/"+placed.ID.String()+"/cancel", customerToken,
			model.CancelRequest{Reason: "ordered the wrong size"})
		require.Equal(t, http.StatusOK, rec.Code)

		var cancelled model.Order
		decodeData(t, rec, &cancelled)
		assert.Equal(t, model.StatusCancelled, cancelled.Status)

		rec = doJSON(t, server, http.MethodGet, "/api/products/"+classic.ID.String(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Product
		decodeData(t, rec, &got)
		assert.Equal(t, classic.Stock, got.Stock)
	})

	t.Run("Insufficient stock conflicts", func(t *testing.T) {
		lowStock := products[3] // Soft Filter Pack, stock 3

		rec := doJSON(t, server, http.MethodPost, "/api/orders", customerToken, model.OrderRequest{
			Items: []model.OrderItemRequest{
				{ProductID: lowStock.ID, Quantity: 10},
			},
			ShippingAddr: model.Address{Street: "1 Glow St", City: "Leeds", Country: "UK"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Analytics report reflects the orders", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/admin/analytics", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var report model.AnalyticsReport
		decodeData(t, rec, &report)
		assert.Equal(t, 0, report.TotalOrders, "the only order was cancelled")
		assert.NotEmpty(t, report.StatusBreakdown)
	})
}

func TestFAQAdminAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	CleanupDB(t, testDB.Pool)
	SeedUser(t, testDB.Pool, "Admin", "admin@glowkart.test", "admin-pass-1", model.RoleAdmin)
	adminToken := loginAs(t, server, "admin@glowkart.test", "admin-pass-1")

	var created model.FAQ

	t.Run("Admin creates a FAQ with defaults", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/admin/faqs", adminToken, map[string]any{
			"question": "Does the diffuser fit zoom lenses?",
			"answer":   "Yes, any barrel between 60mm and 80mm.",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		decodeData(t, rec, &created)
		assert.Equal(t, model.DefaultFAQCategory, created.Category)
		assert.True(t, created.IsActive)
	})

	t.Run("Public listing shows the FAQ without admin fields", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/faqs", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var faqs []model.PublicFAQ
		decodeData(t, rec, &faqs)
		require.Len(t, faqs, 1)
		assert.Equal(t, created.ID, faqs[0].ID)
	})

	t.Run("Deactivated FAQ disappears from the storefront", func(t *testing.T) {
		inactive := false
		rec := doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/faqs/%s", created.ID), adminToken,
			model.FAQUpdateRequest{IsActive: &inactive})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, server, http.MethodGet, "/api/faqs", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var faqs []model.PublicFAQ
		decodeData(t, rec, &faqs)
		assert.Empty(t, faqs)
	})
}

func TestUserAdminAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	CleanupDB(t, testDB.Pool)
	SeedUser(t, testDB.Pool, "Admin", "admin@glowkart.test", "admin-pass-1", model.RoleAdmin)
	adminToken := loginAs(t, server, "admin@glowkart.test", "admin-pass-1")

	registerUser(t, server, "Ana", "ana@example.com")

	var anaID uuid.UUID

	t.Run("Admin lists users", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/admin/users", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var users []model.User
		decodeData(t, rec, &users)
		require.Len(t, users, 2)
		for _, u := range users {
			if u.Email == "ana@example.com" {
				anaID = u.ID
			}
		}
		require.NotEqual(t, uuid.Nil, anaID)
	})

	t.Run("Disabled account can no longer log in", func(t *testing.T) {
		active := false
		rec := doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/users/%s/active", anaID), adminToken,
			map[string]any{"active": &active})
		require.Equal(t, http.StatusOK, rec.Code)

		login := doJSON(t, server, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
			Email: "ana@example.com", Password: "password123",
		})
		assert.Equal(t, http.StatusForbidden, login.Code)
	})
}
